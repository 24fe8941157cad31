package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"person_search/config"
	"person_search/logger"
	"person_search/models"
	"person_search/utils"
)

// PersonSearcher 人物搜索能力
type PersonSearcher interface {
	Search(ctx context.Context, name, extraDetails string) (*models.ResponseEnvelope, error)
}

// PersonHandler 人物搜索接口
type PersonHandler struct {
	cfg     *config.Config
	service PersonSearcher
}

// NewPersonHandler 创建人物搜索接口
func NewPersonHandler(cfg *config.Config, service PersonSearcher) *PersonHandler {
	return &PersonHandler{cfg: cfg, service: service}
}

// SearchPerson godoc
// @Summary 搜索人物并生成摘要
// @Description 通过搜索引擎查询人物信息，按关键词分类，并调用摘要服务生成AI摘要
// @Tags 人物搜索
// @Accept json
// @Produce json
// @Param request body models.SearchPersonRequest true "人物姓名和补充信息"
// @Success 200 {object} models.ResponseEnvelope "成功，或没有搜索结果"
// @Failure 400 {object} models.ResponseEnvelope "参数错误"
// @Failure 500 {object} models.ResponseEnvelope "服务器错误"
// @Router /search-person [post]
func (h *PersonHandler) SearchPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.WithContext(ctx)

	var req models.SearchPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("解析请求体失败", "error", err)
		utils.WriteJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.MessageNameRequired, h.errorDetail(err)))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		utils.WriteJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.MessageNameRequired, ""))
		return
	}

	resp, err := h.service.Search(ctx, req.Name, req.ExtraDetails)
	if err != nil {
		log.Error("人物搜索失败", "name", req.Name, "error", err)
		utils.WriteJSON(w, http.StatusInternalServerError, models.NewErrorResponse(models.MessageServerError, h.errorDetail(err)))
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// HealthHandler godoc
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string "成功"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteFormattedJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorDetail 仅在开发模式下返回错误详情
func (h *PersonHandler) errorDetail(err error) string {
	if err == nil || h.cfg == nil || !h.cfg.IsDevelopment() {
		return ""
	}
	return err.Error()
}
