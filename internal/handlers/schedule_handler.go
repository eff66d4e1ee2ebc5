package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	loc      *time.Location
	list     *ucAppointment.ListSchedule
	dayBoard *ucAppointment.GetDayBoard
	navigate *ucAppointment.NavigateSchedule
}

func NewScheduleHandler(
	loc *time.Location,
	list *ucAppointment.ListSchedule,
	dayBoard *ucAppointment.GetDayBoard,
	navigate *ucAppointment.NavigateSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		loc:      loc,
		list:     list,
		dayBoard: dayBoard,
		navigate: navigate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// filtros aceitam parâmetro repetido (?status=a&status=b) ou lista (?status=a,b)
type filterQuery struct {
	Status  []string `form:"status"`
	Branch  []string `form:"branch"`
	Service []string `form:"service"`
}

type scheduleQuery struct {
	Date string `form:"date"`
	View string `form:"view"`
	filterQuery
}

type dayBoardQuery struct {
	Date        string `form:"date"`
	Granularity int    `form:"granularity" binding:"omitempty,oneof=15 30 60"`
	filterQuery
}

type navigateQuery struct {
	Date      string `form:"date"`
	View      string `form:"view"`
	Direction string `form:"direction"`
}

func (q filterQuery) toFilterSet() schedule.FilterSet {
	var fs schedule.FilterSet

	for _, s := range splitValues(q.Status) {
		fs.Status = append(fs.Status, domain.ParseStatus(s))
	}
	fs.BranchIDs = splitValues(q.Branch)
	fs.ServiceNames = splitValues(q.Service)

	return fs
}

func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// ======================================================
// LIST (dia / semana)
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	var q scheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", "Parâmetros inválidos.")
		return
	}

	date, err := parseDateInShop(h.loc, q.Date)
	if err != nil {
		writeError(c, err)
		return
	}

	view, err := schedule.ParseViewMode(q.View)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.list.Execute(c.Request.Context(), ucAppointment.ScheduleQuery{
		Date:    date,
		View:    view,
		Filters: q.toFilterSet(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// DAY BOARD (slots do dia)
// ======================================================

func (h *ScheduleHandler) DayBoard(c *gin.Context) {
	var q dayBoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_granularity", "Granularidade inválida. Use 15, 30 ou 60.")
		return
	}

	date, err := parseDateInShop(h.loc, q.Date)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.dayBoard.Execute(c.Request.Context(), ucAppointment.DayBoardQuery{
		Date:        date,
		Granularity: q.Granularity,
		Filters:     q.toFilterSet(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// NAVIGATE (anterior / próximo / hoje)
// ======================================================

func (h *ScheduleHandler) Navigate(c *gin.Context) {
	var q navigateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", "Parâmetros inválidos.")
		return
	}

	date, err := parseDateInShop(h.loc, q.Date)
	if err != nil {
		writeError(c, err)
		return
	}

	view, err := schedule.ParseViewMode(q.View)
	if err != nil {
		writeError(c, err)
		return
	}

	dir, err := ucAppointment.ParseDirection(q.Direction)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.navigate.Execute(c.Request.Context(), date, view, dir)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
