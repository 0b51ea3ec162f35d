//go:build !windows && !unix

package process

import "syscall"

func detachAttr() *syscall.SysProcAttr {
	return nil
}
