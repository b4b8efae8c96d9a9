package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestTimeout = 2 * time.Second

var errBadPath = errors.New("malformed path parameter")

// MazeController serves maze reads publicly and cell mutations to
// authorized callers.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:id", mc.getMaze)
		mazes.GET("/:id/render", mc.render)
		mazes.GET("/:id/cells/:row/:col", mc.getCell)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.POST("/:id/passages", mc.carvePassage)
		mazes.PUT("/:id/cells/:row/:col/walls", mc.setWalls)
		mazes.DELETE("/:id/cells/:row/:col/walls/:direction", mc.removeWall)
		mazes.PUT("/:id/cells/:row/:col/visited", mc.setVisited)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	id, err := mc.mazeService.Create(timeoutCtx, request.Width, request.Height, request.Algorithm, request.Seed)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreateMazeResponse{ID: id.String()})
}

// getMaze returns every cell of a maze.
func (mc *MazeController) getMaze(ctx *gin.Context) {
	id, err := mazeID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	g, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := &MazeResponse{
		ID:     id.String(),
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  make([]CellResponse, 0, g.Width()*g.Height()),
	}
	g.Each(func(c *maze.Cell) {
		response.Cells = append(response.Cells, toCellResponse(c))
	})

	ctx.JSON(http.StatusOK, response)
}

// render returns the ASCII drawing of a maze.
func (mc *MazeController) render(ctx *gin.Context) {
	id, err := mazeID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	g, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, g.String())
}

// getCell returns a single cell.
func (mc *MazeController) getCell(ctx *gin.Context) {
	id, pos, err := cellPath(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	g, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	c, err := g.Cell(pos)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toCellResponse(c))
}

// carvePassage opens the wall between two adjacent cells.
func (mc *MazeController) carvePassage(ctx *gin.Context) {
	id, err := mazeID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var request PassageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = mc.mazeService.CarvePassage(ctx, id, request.From.cellPosition(), request.To.cellPosition())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// setWalls overwrites the walls of a cell.
func (mc *MazeController) setWalls(ctx *gin.Context) {
	id, pos, err := cellPath(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var request WallsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	walls, err := maze.WallsFromValues(request.Walls)
	if err != nil {
		writeError(ctx, err)
		return
	}

	if err := mc.mazeService.SetWalls(ctx, id, pos, walls); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// removeWall opens a single wall of a cell.
func (mc *MazeController) removeWall(ctx *gin.Context) {
	id, pos, err := cellPath(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	d, err := maze.ParseDirection(ctx.Param("direction"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	if err := mc.mazeService.RemoveWall(ctx, id, pos, d); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// setVisited sets the visited mark of a cell.
func (mc *MazeController) setVisited(ctx *gin.Context) {
	id, pos, err := cellPath(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var request VisitedRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.mazeService.SetVisited(ctx, id, pos, *request.Visited); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func mazeID(ctx *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, errBadPath
	}
	return id, nil
}

func cellPath(ctx *gin.Context) (uuid.UUID, maze.CellPosition, error) {
	id, err := mazeID(ctx)
	if err != nil {
		return uuid.Nil, maze.CellPosition{}, err
	}
	row, err := strconv.Atoi(ctx.Param("row"))
	if err != nil {
		return uuid.Nil, maze.CellPosition{}, errBadPath
	}
	col, err := strconv.Atoi(ctx.Param("col"))
	if err != nil {
		return uuid.Nil, maze.CellPosition{}, errBadPath
	}
	return id, maze.CellPosition{Row: row, Col: col}, nil
}

// writeError maps domain errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrMazeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, maze.ErrNotAdjacent), errors.Is(err, maze.ErrAsymmetricWalls):
		status = http.StatusConflict
	case errors.Is(err, errBadPath),
		errors.Is(err, maze.ErrInvalidGeometry),
		errors.Is(err, maze.ErrInvalidArgument),
		errors.Is(err, maze.ErrIndexOutOfRange),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, generator.ErrUnknownAlgorithm):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
