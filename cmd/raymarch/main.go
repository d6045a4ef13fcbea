package main

import (
	"log"
	"os"
	"runtime"

	"github.com/leterax/go-raymarch/internal/config"
	"github.com/leterax/go-raymarch/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	renderer, err := render.NewRenderer(cfg, os.DirFS("."))
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
