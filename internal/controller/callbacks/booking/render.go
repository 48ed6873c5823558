package booking

import (
	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/reservation_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// renderSlots перерисовывает сетку слотов в сообщении с кнопкой
func renderSlots(hc *common.HandlerContext, snap service.Snapshot) {
	text, kb := common.BuildSlotScreen(snap)
	edit(hc, text, kb)
}

// edit редактирует сообщение, неудачу только логирует
func edit(hc *common.HandlerContext, text string, kb *models.InlineKeyboardMarkup) {
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Log().Error("Failed to edit booking message", zap.Error(err))
	}
}
