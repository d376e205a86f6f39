//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

var labs = []string{"reflectance-lab", "skybox-lab"}

// Builds both lab binaries into bin/.
func (Build) All() error {
	for _, lab := range labs {
		out := filepath.Join("bin", lab)
		if _, err := executeCmd("go", withArgs("build", "-o", out, "./cmd/"+lab), withStream()); err != nil {
			return err
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Runs the unit tests of every package.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
