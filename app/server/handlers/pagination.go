package handlers

import "strconv"

// parsePageIndex 解析从零开始的页码，缺失或无效时落回第零页
func (a *App) parsePageIndex(raw string) int {
	if raw == "" {
		return 0
	}

	pageIndex, err := strconv.Atoi(raw)
	if err != nil || pageIndex < 0 {
		return 0
	}

	return pageIndex
}
