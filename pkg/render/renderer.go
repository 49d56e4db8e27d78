package render

import (
	"fmt"

	"openglhelper"

	"github.com/corradin/voxelcore/pkg/stream"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the window, camera, shader, GPU chunk buffers, and mesh
// registry, and drives the per-frame draw loop of spec.md §4.I/§4.J: drain
// the streaming scheduler's results into the registry, frustum-cull the
// registry against the camera, and issue one multi-draw-indirect call for
// whatever survives.
type Renderer struct {
	window *openglhelper.Window
	camera *Camera
	shader *openglhelper.Shader

	vao     *openglhelper.VertexArrayObject
	buffers *ChunkBufferManager
	meshes  *Registry

	lastFrameTime float64
	deltaTime     float32
	totalTime     float32

	isWireframeMode bool
	isClosed        bool
}

const (
	maxResidentChunks = 4096
	maxQuadsPerChunk  = 4096
	bytesPerVertex    = 4
	chunkSizeBytes    = maxQuadsPerChunk * 4 * bytesPerVertex
)

// NewRenderer opens a window, compiles the chunk shader, and allocates the
// GPU chunk buffer manager and mesh registry.
func NewRenderer(width, height int, title string) (*Renderer, error) {
	window, err := openglhelper.NewWindow(width, height, title, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	cameraPos := mgl32.Vec3{0, 80, 0}
	camera := NewCamera(cameraPos)

	r := &Renderer{
		window: window,
		camera: camera,
		meshes: NewRegistry(),
	}

	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(r.cursorPosCallback)
	window.GLFWWindow().SetMouseButtonCallback(r.mouseButtonCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	shader, err := openglhelper.LoadShaderFromFiles("pkg/render/shaders/vert.glsl", "pkg/render/shaders/frag.glsl")
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	r.vao = openglhelper.NewVAO()
	r.vao.Bind()
	gl.VertexAttribIPointer(0, 1, gl.UNSIGNED_INT, 4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	r.buffers = NewChunkBufferManager(maxResidentChunks, chunkSizeBytes, maxQuadsPerChunk)

	return r, nil
}

// Buffers returns the GPU chunk buffer manager, for use as the
// stream.Uploader[*ChunkBuffer] passed to stream.NewScheduler.
func (r *Renderer) Buffers() *ChunkBufferManager {
	return r.buffers
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Window returns the underlying window.
func (r *Renderer) Window() *openglhelper.Window {
	return r.window
}

// SetupOpenGL configures the GL state the draw loop assumes is set once at
// startup.
func (r *Renderer) SetupOpenGL() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	r.shader.Use()
}

// ApplyResults drains every pending message from results into the mesh
// registry, in arrival order, per spec.md §5's single-consumer contract.
func (r *Renderer) ApplyResults(results <-chan stream.MeshResult[*ChunkBuffer]) {
	for {
		select {
		case res, ok := <-results:
			if !ok {
				return
			}
			if res.Evict {
				r.meshes.Evict(res.Position)
				r.buffers.Evict(res.Position)
				continue
			}
			r.meshes.Upsert(res.Buffer)
		default:
			return
		}
	}
}

// BeginFrame advances timing state and processes camera input. Call once per
// frame before ApplyResults/DrawFrame.
func (r *Renderer) BeginFrame() {
	currentTime := glfw.GetTime()
	r.deltaTime = float32(currentTime - r.lastFrameTime)
	r.lastFrameTime = currentTime
	r.totalTime += r.deltaTime

	r.camera.ProcessKeyboardInput(r.deltaTime, r.window)
}

// DeltaTime returns the duration of the last frame, in seconds.
func (r *Renderer) DeltaTime() float32 {
	return r.deltaTime
}

// DrawFrame clears the screen, frustum-culls the mesh registry against the
// camera's current view-projection, and issues one multi-draw-indirect call
// for the surviving chunk buffers.
func (r *Renderer) DrawFrame() {
	r.window.Clear(mgl32.Vec4{0.05, 0.05, 0.1, 1.0})
	gl.Enable(gl.DEPTH_TEST)

	viewProjection := r.camera.ViewProjection()
	frustum := FrustumFromViewProjection(viewProjection)
	visible := r.meshes.Visible(frustum)

	r.shader.Use()
	r.shader.SetMat4("view", r.camera.ViewMatrix())
	r.shader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.shader.SetVec3("viewPos", r.camera.Position())
	r.shader.SetVec3("lightPos", mgl32.Vec3{30.0, 200.0, 30.0})
	r.shader.SetVec3("lightColor", mgl32.Vec3{1.0, 1.0, 1.0})

	r.vao.Bind()
	r.buffers.RenderVisible(visible)

	r.window.SwapBuffers()
	r.window.PollEvents()
}

// ShouldClose returns whether the window should close.
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// Cleanup releases every GPU resource the renderer owns.
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}

	if r.buffers != nil {
		r.buffers.Cleanup()
	}
	if r.vao != nil {
		r.vao.Delete()
	}
	if r.shader != nil {
		r.shader.Delete()
	}

	r.window.Close()
	r.isClosed = true
}

func (r *Renderer) keyCallback(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.GLFWWindow().SetShouldClose(true)
	}
	if key == glfw.KeyC && action == glfw.Press {
		r.window.ToggleMouseCaptured()
		r.camera.ResetMouseState()
	}
	if key == glfw.KeyX && action == glfw.Press {
		r.ToggleWireframeMode()
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.camera.HandleMouseMovement(xpos, ypos)
	}
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
}

func (r *Renderer) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	r.camera.HandleMouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}

// ToggleWireframeMode switches between solid and wireframe rendering.
func (r *Renderer) ToggleWireframeMode() {
	r.isWireframeMode = !r.isWireframeMode

	if r.isWireframeMode {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
