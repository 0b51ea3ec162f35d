// Package gameinfo applies the text edits CS2 needs for local KZ servers and
// the Hammer toolchain. Every function returns the new content and whether it
// changed; applying a function twice is a no-op.
package gameinfo

import (
	"regexp"
	"strings"
)

const (
	gameSearchPath    = "\t\t\tGame\tcsgo"
	metamodSearchPath = "\t\t\tGame\tcsgo/addons/metamod"

	bandwidthComment = "\t\t// Bandwidth control default: 300,000 Bps"
	p2pConVar        = "\t\t\"net_p2p_listen_dedicated\" \"1\""
	gameInstructor   = "\tGameInstructor"

	customNavBuild = "CustomNavBuild"
	// the CustomNavBuild key, its braces and two entries
	customNavBuildLines = 5
)

// splitLines splits content keeping line endings attached
func splitLines(content string) []string {
	return strings.SplitAfter(content, "\n")
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// lineEnding returns the terminator of line, or of the document when line has none
func lineEnding(line, content string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	case strings.Contains(content, "\r\n"):
		return "\r\n"
	}
	return "\n"
}

func hasLine(lines []string, want string) bool {
	for _, l := range lines {
		if trimEOL(l) == want {
			return true
		}
	}
	return false
}

// insertBefore inserts block before every line equal to target
func insertBefore(content, target string, block []string) (string, bool) {
	lines := splitLines(content)
	var sb strings.Builder
	changed := false
	for _, line := range lines {
		if trimEOL(line) == target {
			eol := lineEnding(line, content)
			for _, b := range block {
				sb.WriteString(b + eol)
			}
			changed = true
		}
		sb.WriteString(line)
	}
	return sb.String(), changed
}

// AddMetamodSearchPath adds the metamod search path in front of the csgo game path
func AddMetamodSearchPath(content string) (string, bool) {
	if hasLine(splitLines(content), metamodSearchPath) {
		return content, false
	}
	return insertBefore(content, gameSearchPath, []string{metamodSearchPath})
}

// StripCustomNavBuild removes the CustomNavBuild block from the core gameinfo
func StripCustomNavBuild(content string) (string, bool) {
	lines := splitLines(content)
	var sb strings.Builder
	skip := 0
	for _, line := range lines {
		if strings.Contains(line, customNavBuild) {
			skip = customNavBuildLines
		}
		if skip > 0 {
			skip--
			continue
		}
		sb.WriteString(line)
	}
	out := sb.String()
	return out, out != content
}

// EnableP2P makes a listen server reachable through Steam networking
func EnableP2P(content string) (string, bool) {
	changed := false
	if !hasLine(splitLines(content), p2pConVar) {
		var c bool
		content, c = insertBefore(content, bandwidthComment, []string{p2pConVar})
		changed = changed || c
	}
	if !strings.Contains(content, "CreateListenSocketP2P") {
		var c bool
		content, c = insertBefore(content, gameInstructor, []string{
			"\tNetworkSystem",
			"\t{",
			"\t\t\"CreateListenSocketP2P\" \"2\"",
			"\t}",
		})
		changed = changed || c
	}
	return content, changed
}

var (
	petExcludeRe       = regexp.MustCompile(`(?s)(\{[^}]*m_Name = "pet"[^}]*?)(m_ExcludeFromMods\s*=\s*\[[^\]]*\])`)
	particleRetailRe   = regexp.MustCompile(`(?s)(particle_asset\s*=[^}]*?)(m_HideForRetailMods\s*=\s*\[[^\]]*\])`)
	defaultTimeLimitRe = regexp.MustCompile(`("defaultTimeLimit"\s+)"60\.0"`)
)

// commentMatches prefixes every non-blank line of the second submatch with //
func commentMatches(re *regexp.Regexp, content string) (string, bool) {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return content, false
	}

	var sb strings.Builder
	last := 0
	changed := false
	for _, m := range matches {
		prefixEnd, sectionStart, sectionEnd := m[3], m[4], m[5]
		sb.WriteString(content[last:sectionStart])
		last = sectionEnd

		section := content[sectionStart:sectionEnd]
		if strings.HasSuffix(content[:prefixEnd], "//") {
			sb.WriteString(section)
			continue
		}

		lines := strings.Split(section, "\n")
		for i, l := range lines {
			if strings.TrimSpace(l) != "" {
				lines[i] = "//" + l
			}
		}
		sb.WriteString(strings.Join(lines, "\n"))
		changed = true
	}
	sb.WriteString(content[last:])
	return sb.String(), changed
}

// EnablePetTool comments out m_ExcludeFromMods of the particle editor tool
// in game/bin/sdkenginetools.txt
func EnablePetTool(content string) (string, bool) {
	return commentMatches(petExcludeRe, content)
}

// EnableParticleAssets comments out m_HideForRetailMods of particle_asset in
// game/bin/assettypes_common.txt
func EnableParticleAssets(content string) (string, bool) {
	return commentMatches(particleRetailRe, content)
}

// SetCS2KZTimeLimit raises the CS2KZ default time limit from 60 to 1440 minutes
func SetCS2KZTimeLimit(content string) (string, bool) {
	out := defaultTimeLimitRe.ReplaceAllString(content, `${1}"1440.0"`)
	return out, out != content
}

// ToCRLF converts LF line endings to CRLF as shipped by Steam
func ToCRLF(content string) string {
	return strings.ReplaceAll(strings.ReplaceAll(content, "\r\n", "\n"), "\n", "\r\n")
}
