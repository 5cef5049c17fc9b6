// Command imgview displays a list of images with pan, zoom, rotate and
// filter controls.
//
// Usage:
//
//	imgview [flags] [image ...]
//
// Without image arguments the built-in list under ./images is shown.
//
// Controls:
//
//	Left / Right        previous / next image
//	0 1 2 3             filter: none, grayscale, invert, edges
//	Keypad + / -        rotate by 5 degrees (= and - also work)
//	Scroll              zoom
//	Left mouse drag     pan
//	Esc                 quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imgview"
	"github.com/go-theft-auto/imgview/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type config struct {
	width, height int
	title         string
	shaderDir     string
	verbose       bool
	images        []string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("imgview", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 512, "initial window width")
	fs.IntVar(&cfg.height, "height", 512, "initial window height")
	fs.StringVar(&cfg.title, "title", "imgview", "window title")
	fs.StringVar(&cfg.shaderDir, "shaders", "", "directory with vertex.glsl and fragment.glsl (default: built in)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.width, cfg.height)
	}
	cfg.images = fs.Args()
	if len(cfg.images) == 0 {
		cfg.images = imgview.DefaultImages
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	imgview.SetVerbose(cfg.verbose)
	logger := imgview.NewLogger()

	playlist, err := imgview.NewPlaylist(cfg.images)
	if err != nil {
		return err
	}

	// Load shader text before touching the window so a bad -shaders
	// directory fails fast.
	shaders, err := opengl.LoadShaderSources(cfg.shaderDir)
	if err != nil {
		return err
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	version, glsl, rendererName := opengl.Info()
	logger.Info("opengl", "version", version, "glsl", glsl, "renderer", rendererName)

	renderer, err := opengl.NewRenderer(shaders, logger)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	input.OnFramebufferResize = renderer.Resize
	renderer.Resize(window.GetFramebufferSize())

	viewer := imgview.New(opengl.NewTextureLoader(logger), renderer, playlist,
		imgview.WithLogger(logger))
	defer viewer.Close()

	if err := viewer.Open(0); err != nil {
		logger.Warn("no initial image", "err", err)
	}

	// Main loop.
	for !window.ShouldClose() {
		in := input.Poll()
		viewer.HandleInput(in)
		if viewer.ShouldClose() {
			window.SetShouldClose(true)
		}

		renderer.Clear()
		if err := viewer.Render(in.Window); err != nil {
			logger.Warn("render", "err", err)
		}

		window.SwapBuffers()
	}

	logger.Info("goodbye")
	return nil
}
