//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Validates the shaders and starts the reflectance lab.
func (Run) Reflectance() error {
	return runLab("reflectance-lab")
}

// Validates the shaders and starts the skybox lab.
func (Run) Skybox() error {
	return runLab("skybox-lab")
}

func runLab(name string) error {
	mg.Deps(Shaders.Validate)
	fmt.Printf("Run %s...\n", name)
	_, err := executeCmd("go", withArgs("run", "./cmd/"+name), withStream())
	return err
}
