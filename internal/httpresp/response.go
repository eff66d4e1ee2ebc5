package httpresp

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const HeaderTotalCount = "X-Total-Count"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List nunca devolve "data": null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}

	c.Header(HeaderTotalCount, strconv.Itoa(len(data)))
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
