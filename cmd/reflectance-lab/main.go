// Command reflectance-lab compares Phong, toon and Oren-Nayar shading on one
// model.
package main

import (
	"render-labs/config"
	"render-labs/internal/launcher"
	"render-labs/labs/reflectance"
)

func main() {
	launcher.Main(config.Reflectance, reflectance.New())
}
