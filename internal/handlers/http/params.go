package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelges/hotelges-backend/internal/handlers/dto"
)

// parseIDParam extrai o parâmetro de rota :id como uint.
// Em caso de valor inválido responde 400 e retorna ok=false.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return 0, false
	}
	return uint(id), true
}

// paginationFrom lê page e page_size da query string.
// Valores ausentes ou inválidos ficam em zero; o repositório aplica
// os defaults e limites.
func paginationFrom(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}
