package completions

import (
	"os"
	"path/filepath"

	"github.com/thm-tools/cli/internal/dispatchers"
)

var commandTree *dispatchers.DispatchNode
var binaryPath string
var binaryName string

// RegisterCommandTree remembers the dispatch tree and resolves the running
// binary's name and path. Called once from main after the tree is built;
// the generators read from here so scripts name the binary actually invoked.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTree = root

	if exe, err := os.Executable(); err == nil {
		// Follow symlinks so a symlinked install still reports the real binary
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			binaryPath = resolved
		} else {
			binaryPath = exe
		}
		binaryName = filepath.Base(binaryPath)
	} else if len(os.Args) > 0 {
		binaryPath = os.Args[0]
		binaryName = filepath.Base(os.Args[0])
	}

	if binaryName == "" {
		binaryName = "thm"
		binaryPath = "thm"
	}
}

// GetCommandTree returns the tree registered at startup, or nil.
func GetCommandTree() *dispatchers.DispatchNode {
	return commandTree
}

// GetBinaryName returns the invoked binary's base name, defaulting to "thm".
func GetBinaryName() string {
	if binaryName == "" {
		return "thm"
	}
	return binaryName
}

// GetBinaryPath returns the invoked binary's full path, defaulting to "thm".
func GetBinaryPath() string {
	if binaryPath == "" {
		return "thm"
	}
	return binaryPath
}
