package render

import (
	"fmt"

	"openglhelper"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Uniforms pushed once per frame rather than per draw.
const (
	uniView         = "view"
	uniProjection   = "projection"
	uniViewPosition = "viewPosition"
)

// Initial camera pose: above and in front of the desk, looking down at it.
var (
	defaultCameraPosition = mgl32.Vec3{0, 5, 12}
	defaultCameraHeading  = mgl32.Vec3{0, -0.5, -2}
)

// Renderer owns the window, the shader program, the camera and the scene,
// and runs the frame loop that ties them together.
type Renderer struct {
	window *openglhelper.Window
	camera *Camera
	scene  *SceneManager
	shader *openglhelper.Shader
	log    *zap.Logger

	// Timing
	lastFrameTime float64
	deltaTime     float32

	// Last projection mode seen, for logging the toggle
	wasOrthographic bool
}

// NewRenderer creates the window and GL context, compiles the scene shader
// and prepares the still-life scene.
func NewRenderer(width, height int, title, assetsDir string, log *zap.Logger) (*Renderer, error) {
	// Create window
	window, err := openglhelper.NewWindow(width, height, title, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Compile the scene shader
	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Create camera
	camera := NewCamera(defaultCameraPosition)
	camera.LookAt(defaultCameraPosition.Add(defaultCameraHeading))

	textures := NewTextureRegistry(glTextureBackend{}, log)
	materials := NewMaterialRegistry()
	scene := NewSceneManager(shader, textures, materials, log)

	renderer := &Renderer{
		window: window,
		camera: camera,
		scene:  scene,
		shader: shader,
		log:    log,
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(renderer.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	// The camera owns the cursor while the window has it captured
	window.SetMouseCaptured(true)

	// Scene setup needs the program bound: lights are pushed as uniforms.
	shader.Use()
	if err := scene.PrepareScene(assetsDir); err != nil {
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	log.Info("scene prepared",
		zap.Int("textures", textures.Len()),
		zap.Int("materials", materials.Len()))

	return renderer, nil
}

// Camera exposes the renderer's camera.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Scene exposes the scene manager.
func (r *Renderer) Scene() *SceneManager {
	return r.scene
}

// render draws one frame of the scene.
func (r *Renderer) render() {
	r.window.Clear(mgl32.Vec4{0.1, 0.1, 0.12, 1.0})

	r.shader.Use()

	// Per-frame view state; both matrices are recomputed every frame
	// because camera state and aspect ratio may change at any time.
	width, height := r.window.Size()
	aspect := float32(width) / float32(height)

	r.shader.SetMat4(uniView, r.camera.ViewMatrix())
	r.shader.SetMat4(uniProjection, r.camera.ProjectionMatrix(aspect))
	r.shader.SetVec3(uniViewPosition, r.camera.Position())

	// Bind every loaded texture to its slot before the draws reference them
	r.scene.Textures().BindAll()

	r.scene.RenderScene()
}

// Run starts the main rendering loop and blocks until the window closes.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		// Calculate delta time
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		// Process input
		r.camera.ProcessKeyboardInput(r.deltaTime, r.window)
		r.logProjectionToggle()

		r.render()

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

func (r *Renderer) logProjectionToggle() {
	ortho := r.camera.Orthographic()
	if ortho == r.wasOrthographic {
		return
	}
	r.wasOrthographic = ortho

	mode := "perspective"
	if ortho {
		mode = "orthographic"
	}
	r.log.Info("switched projection", zap.String("mode", mode))
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.scene.Destroy()
	r.shader.Delete()
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == KeyEscape && action == glfw.Press {
		r.window.GLFWWindow().SetShouldClose(true)
	}

	// Toggle mouse capture with C key
	if key == glfw.KeyC && action == glfw.Press {
		r.window.ToggleMouseCaptured()
		r.camera.ResetMouseState()
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.camera.HandleMouseMovement(xpos, ypos)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
}
