package services

import (
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type advisoryDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _advisory advisoryDeps

func InitAdvisoryDeps(db *gorm.DB, rt *RealtimeHub) {
	_advisory = advisoryDeps{db: db, rt: rt}
}

// EmitAdvisory records an advisory and pushes it to the user's live
// connections. Critical-buffer advisories additionally go out by email.
// Safe to call anywhere; a no-op before InitAdvisoryDeps.
func EmitAdvisory(userID uint, typ, message string) {
	if _advisory.db == nil {
		return
	}
	a := &models.Advisory{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _advisory.db.Create(a).Error

	if _advisory.rt != nil {
		_advisory.rt.BroadcastAdvisory(userID, AdvisoryEvent{Kind: "advisory.created", Advisory: a})
	}

	if typ == models.AdvisoryBufferCritical {
		var user models.User
		if err := _advisory.db.First(&user, userID).Error; err == nil {
			_ = utils.SendBufferAlertEmail(user.Email, message)
		}
	}
}
