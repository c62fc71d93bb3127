package terrain

import (
	"voxmesh/internal/graphics"
	"voxmesh/internal/graphics/renderables/terrain/shaders"
	"voxmesh/internal/graphics/renderer"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Terrain renders greedy-meshed chunks. Meshing runs on a worker pool; the
// packed instance streams come back over a channel and are expanded and
// uploaded on the render thread.
type Terrain struct {
	shader *graphics.Shader
	pool   *meshing.WorkerPool

	meshes  map[world.ChunkCoord]*chunkMesh
	pending map[world.ChunkCoord]struct{}
	results chan meshing.MeshResult

	debugFaceColors bool
	quadCount       int
}

type chunkMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	quadCount   int
}

// New creates the terrain renderable with the given mesh worker count.
func New(workers int, debugFaceColors bool) *Terrain {
	return &Terrain{
		pool:            meshing.NewWorkerPool(workers, 128),
		meshes:          make(map[world.ChunkCoord]*chunkMesh),
		pending:         make(map[world.ChunkCoord]struct{}),
		results:         make(chan meshing.MeshResult, 64),
		debugFaceColors: debugFaceColors,
	}
}

// Init compiles the terrain shader.
func (t *Terrain) Init() error {
	shader, err := graphics.NewShader(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return err
	}
	t.shader = shader
	return nil
}

// Render submits dirty chunks for meshing, applies finished mesh results
// and draws every chunk mesh.
func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("terrain.Render")()

	t.processResults()
	t.submitDirty(ctx.World)

	t.shader.Use()
	t.shader.SetMat4("model", mgl32.Ident4())
	t.shader.SetMat4("view", ctx.View)
	t.shader.SetMat4("projection", ctx.Proj)

	for coord, mesh := range t.meshes {
		if mesh.vertexCount == 0 {
			continue
		}
		offset := mgl32.Vec3{
			float32(coord.X * world.ChunkSize),
			float32(coord.Y * world.ChunkSize),
			float32(coord.Z * world.ChunkSize),
		}
		t.shader.SetVec3("chunkOffset", offset)
		gl.BindVertexArray(mesh.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, mesh.vertexCount)
	}
	gl.BindVertexArray(0)
}

// processResults drains finished mesh jobs and uploads their buffers.
func (t *Terrain) processResults() {
	defer profiling.Track("terrain.processResults")()
	for {
		select {
		case result := <-t.results:
			delete(t.pending, result.Coord)
			t.upload(result)
		default:
			return
		}
	}
}

// submitDirty enqueues mesh jobs for chunks that changed. Chunks are marked
// clean on submission so a chunk edited mid-mesh is picked up again on the
// next frame.
func (t *Terrain) submitDirty(w *world.World) {
	defer profiling.Track("terrain.submitDirty")()
	for _, c := range w.DirtyChunks() {
		coord := c.Coord
		if _, inFlight := t.pending[coord]; inFlight {
			continue
		}
		job := meshing.MeshJob{
			World:      w,
			Chunk:      c,
			Coord:      coord,
			ResultChan: t.results,
		}
		if t.pool.Submit(job) {
			t.pending[coord] = struct{}{}
			c.SetClean()
		}
	}
}

// upload expands a packed instance stream into an interleaved vertex buffer
// and pushes it into the chunk's VBO.
func (t *Terrain) upload(result meshing.MeshResult) {
	mesh := t.meshes[result.Coord]

	if len(result.Instances) == 0 {
		if mesh != nil {
			t.quadCount -= mesh.quadCount
			mesh.quadCount = 0
			mesh.vertexCount = 0
		}
		return
	}

	verts := BuildVertices(result.Instances, t.debugFaceColors)

	if mesh == nil {
		mesh = &chunkMesh{}
		gl.GenVertexArrays(1, &mesh.vao)
		gl.GenBuffers(1, &mesh.vbo)

		gl.BindVertexArray(mesh.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
		stride := int32(VertexStride * 4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
		gl.EnableVertexAttribArray(3)
		gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, gl.PtrOffset(8*4))
		t.meshes[result.Coord] = mesh
	}

	t.quadCount += result.QuadCount - mesh.quadCount
	mesh.quadCount = result.QuadCount
	mesh.vertexCount = int32(len(verts) / VertexStride)

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// QuadCount returns the number of quads currently resident on the GPU.
func (t *Terrain) QuadCount() int {
	return t.quadCount
}

// SetViewport is part of the Renderable interface; terrain has no
// viewport-dependent state.
func (t *Terrain) SetViewport(width, height int) {}

// Dispose frees GPU resources and stops the worker pool.
func (t *Terrain) Dispose() {
	t.pool.Shutdown()
	for _, mesh := range t.meshes {
		if mesh.vbo != 0 {
			gl.DeleteBuffers(1, &mesh.vbo)
		}
		if mesh.vao != 0 {
			gl.DeleteVertexArrays(1, &mesh.vao)
		}
	}
	t.meshes = nil
	if t.shader != nil {
		t.shader.Delete()
	}
}
