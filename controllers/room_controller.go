package controllers

import (
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/utils"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// RoomController serves the daily room board.
type RoomController struct {
	rooms *services.RoomStateService
	now   func() time.Time
}

func NewRoomController(rooms *services.RoomStateService, clock func() time.Time) RoomController {
	if clock == nil {
		clock = time.Now
	}
	return RoomController{rooms: rooms, now: clock}
}

// GetLocations godoc
// @Summary  List guesthouses and their rooms
// @Tags     board
// @Produce  json
// @Success  200 {object} response.Response{data=[]dto.LocationResponse}
// @Router   /api/v1/locations [get]
func (rc RoomController) GetLocations(c *gin.Context) {
	out := make([]dto.LocationResponse, 0, len(models.Locations))
	for _, loc := range models.Locations {
		out = append(out, dto.LocationResponse{ID: loc.ID, Name: loc.Name, Rooms: loc.Rooms})
	}
	response.Success(c, out)
}

// GetBoard godoc
// @Summary  Board of one location for one date
// @Tags     board
// @Produce  json
// @Param    location path  string true  "location id"
// @Param    date     query string false "YYYY-MM-DD, default today"
// @Success  200 {object} response.Response{data=dto.BoardDayResponse}
// @Router   /api/v1/board/{location} [get]
func (rc RoomController) GetBoard(c *gin.Context) {
	loc, date, ok := rc.boardParams(c)
	if !ok {
		return
	}
	response.Success(c, rc.rooms.Day(loc, date))
}

// GetBoardWindow returns the board from 30 days before the date to 30 days after.
func (rc RoomController) GetBoardWindow(c *gin.Context) {
	loc, date, ok := rc.boardParams(c)
	if !ok {
		return
	}
	response.Success(c, rc.rooms.Window(loc, date))
}

// UpdateCell godoc
// @Summary  Edit one field of one room on one day
// @Tags     board
// @Accept   json
// @Produce  json
// @Param    location path string                true "location id"
// @Param    date     path string                true "YYYY-MM-DD"
// @Param    room     path string                true "room number"
// @Param    body     body dto.CellUpdateRequest true "field and value"
// @Success  200 {object} response.Response{data=dto.CellUpdateResponse}
// @Router   /api/v1/board/{location}/{date}/{room} [put]
func (rc RoomController) UpdateCell(c *gin.Context) {
	var req dto.CellUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "field must be one of guestName, status, occupiedUntil")
		return
	}

	loc, err := validator.ValidateRoom(c.Param("location"), c.Param("room"))
	if err != nil {
		handleError(c, err)
		return
	}
	date, err := validator.ValidateDay(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}

	key := models.NewRoomKey(loc.ID, date, c.Param("room"))
	resp, err := rc.rooms.UpdateCell(c.Request.Context(), key, req.Field, req.Value)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, resp)
}

// GetNextDays returns the next seven days with their Hebrew weekday names.
func (rc RoomController) GetNextDays(c *gin.Context) {
	response.Success(c, utils.NextDays(rc.now(), constants.NextDaysCount))
}

func (rc RoomController) boardParams(c *gin.Context) (models.Location, time.Time, bool) {
	loc, err := validator.ValidateLocation(c.Param("location"))
	if err != nil {
		handleError(c, err)
		return models.Location{}, time.Time{}, false
	}

	date := utils.Day(rc.now())
	if raw := c.Query("date"); raw != "" {
		date, err = validator.ValidateDay(raw)
		if err != nil {
			handleError(c, err)
			return models.Location{}, time.Time{}, false
		}
	}
	return loc, date, true
}
