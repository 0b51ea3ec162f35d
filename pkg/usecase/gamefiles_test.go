package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces/mocks"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/usecase"
)

func TestGameFiles_PatchAndRestore(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)
	uc := usecase.NewGameFiles(&mocks.FetcherMock{}, "")

	gt.NoError(t, uc.Backup(ctx, install))
	gt.NoError(t, uc.Patch(ctx, install, model.LaunchListen))

	patched := readTestFile(t, install.GameInfo())
	gt.String(t, patched).Contains("\t\t\tGame\tcsgo/addons/metamod\r\n")
	gt.String(t, patched).Contains("net_p2p_listen_dedicated")
	gt.False(t, strings.Contains(readTestFile(t, install.CoreGameInfo()), "CustomNavBuild"))

	gt.NoError(t, uc.Restore(ctx, install))
	gt.Value(t, readTestFile(t, install.GameInfo())).Equal(testGameInfo)
	gt.Value(t, readTestFile(t, install.CoreGameInfo())).Equal(testCoreGameInfo)
	gt.False(t, fileExists(install.GameInfo()+".bak"))

	// nothing left to restore
	gt.NoError(t, uc.Restore(ctx, install))
}

func TestGameFiles_BackupKeepsEarlierBackup(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)
	uc := usecase.NewGameFiles(&mocks.FetcherMock{}, "")

	gt.NoError(t, uc.Backup(ctx, install))
	gt.NoError(t, uc.Patch(ctx, install, model.LaunchListen))

	// a second session backs up the already patched files
	gt.NoError(t, uc.Backup(ctx, install))
	gt.Value(t, readTestFile(t, install.GameInfo()+".bak")).Equal(testGameInfo)

	gt.NoError(t, uc.Restore(ctx, install))
	gt.Value(t, readTestFile(t, install.GameInfo())).Equal(testGameInfo)
	gt.Value(t, readTestFile(t, install.CoreGameInfo())).Equal(testCoreGameInfo)
}

func TestGameFiles_PatchInsecure(t *testing.T) {
	install := newInstall(t)
	uc := usecase.NewGameFiles(&mocks.FetcherMock{}, "")
	gt.NoError(t, uc.Patch(context.Background(), install, model.LaunchInsecure))
	gt.Value(t, readTestFile(t, install.GameInfo())).Equal(testGameInfo)
}

func TestGameFiles_PatchMapping(t *testing.T) {
	install := newInstall(t)
	writeTestFile(t, install.SDKEngineTools(), "{\n\tm_Name = \"pet\"\n\tm_ExcludeFromMods = [ \"csgo\" ]\n}\n")

	uc := usecase.NewGameFiles(&mocks.FetcherMock{}, "")
	// assettypes_common.txt is missing, which only warns
	gt.NoError(t, uc.Patch(context.Background(), install, model.LaunchMapping))
	gt.String(t, readTestFile(t, install.SDKEngineTools())).Contains("//m_ExcludeFromMods")
	gt.False(t, strings.Contains(readTestFile(t, install.GameInfo()), "net_p2p_listen_dedicated"))
}

func TestGameFiles_SetTimeLimit(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)
	uc := usecase.NewGameFiles(&mocks.FetcherMock{}, "")

	gt.NoError(t, uc.SetTimeLimit(ctx, install))

	writeTestFile(t, install.CS2KZServerConfig(), "\"defaultTimeLimit\"  \"60.0\"\n")
	gt.NoError(t, uc.SetTimeLimit(ctx, install))
	gt.Value(t, readTestFile(t, install.CS2KZServerConfig())).Equal("\"defaultTimeLimit\"  \"1440.0\"\n")
}

func TestGameFiles_Verify(t *testing.T) {
	ctx := context.Background()
	install := newInstall(t)

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			if strings.HasSuffix(url, "game/csgo_core/gameinfo.gi") {
				return nil, errors.New("unreachable")
			}
			return []byte("pristine\nfile\n"), nil
		},
	}
	uc := usecase.NewGameFiles(fetcher, "https://raw.example/GameTracking-CS2/")

	gt.NoError(t, uc.Verify(ctx, install, model.LaunchMapping))

	calls := fetcher.FetchCalls()
	gt.A(t, calls).Length(4)
	gt.Value(t, calls[0].Url).Equal("https://raw.example/GameTracking-CS2/game/csgo/gameinfo.gi")
	gt.Value(t, calls[3].Url).Equal("https://raw.example/GameTracking-CS2/game/bin/assettypes_common.txt")

	gt.Value(t, readTestFile(t, install.GameInfo())).Equal("pristine\r\nfile\r\n")
	gt.Value(t, readTestFile(t, install.CoreGameInfo())).Equal(testCoreGameInfo)
	gt.Value(t, readTestFile(t, install.SDKEngineTools())).Equal("pristine\r\nfile\r\n")
}
