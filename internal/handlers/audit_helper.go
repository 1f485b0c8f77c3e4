package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/okabeach/flat-manager/internal/models"
)

func writeAudit(
	db *gorm.DB,
	propertyID uint,
	userID *uint,
	action string,
	entity string,
	entityID string,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	log := models.AuditLog{
		PropertyID: propertyID,
		UserID:     userID,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Metadata:   payload,
	}

	db.Create(&log)
}
