// Command skybox-lab shows a cubemap skybox around a refracting object.
package main

import (
	"render-labs/config"
	"render-labs/internal/launcher"
	"render-labs/labs/skybox"
)

func main() {
	launcher.Main(config.Skybox, skybox.New())
}
