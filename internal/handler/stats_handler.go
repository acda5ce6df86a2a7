package handler

import (
	"net/http"

	"zyron-go/internal/service"
	"zyron-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// StatsHandler 提供意图使用统计的查询接口。
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler 创建一个新的 StatsHandler。
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetIntentCounts 返回按 (意图, 语言) 聚合的使用计数。
func (h *StatsHandler) GetIntentCounts(c *gin.Context) {
	counts, err := h.statsService.GetIntentCounts(c.Request.Context())
	if err != nil {
		log.Errorf("读取意图统计失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "无法读取统计数据",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    counts,
	})
}
