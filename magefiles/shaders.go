//go:build mage

package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Shaders mg.Namespace

const shaderDir = "assets/shaders"

// Checks every GLSL file with glslangValidator, when it is installed.
func (Shaders) Validate() error {
	if _, err := exec.LookPath("glslangValidator"); err != nil {
		fmt.Println("glslangValidator not found, skipping shader validation")
		return nil
	}

	var files []string
	for _, pattern := range []string{"*.vert", "*.frag"} {
		matches, err := filepath.Glob(filepath.Join(shaderDir, pattern))
		if err != nil {
			return err
		}
		files = append(files, matches...)
	}
	for _, f := range files {
		if _, err := executeCmd("glslangValidator", withArgs(f)); err != nil {
			return err
		}
	}
	fmt.Printf("%d shaders OK\n", len(files))
	return nil
}
