package db

import (
	"context"
	"fmt"

	"github.com/ula-apps/appstartup/core/entities"
	"github.com/ula-apps/appstartup/internal/startup"
	"gorm.io/gorm"
)

type SessionDao struct {
	db *gorm.DB
}

var _ startup.SessionStore = &SessionDao{}

func (d *SessionDao) AllSessions(ctx context.Context) ([]entities.Session, error) {
	var models []sessionModel
	err := d.db.WithContext(ctx).Order("id").Find(&models).Error
	if err != nil {
		return nil, err
	}
	return sessionEntities(models)
}

func (d *SessionDao) FindAppsSession(ctx context.Context, appName string) ([]entities.Session, error) {
	var models []sessionModel
	err := d.db.WithContext(ctx).
		Where("is_apps_session = ? AND name = ?", true, appName).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return sessionEntities(models)
}

func (d *SessionDao) InsertSession(ctx context.Context, session entities.Session) (int64, error) {
	model := newSessionModel(session)
	err := d.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		return 0, err
	}
	return model.ID, nil
}

// UpdateSession overwrites every column of an existing session.
func (d *SessionDao) UpdateSession(ctx context.Context, session entities.Session) error {
	model := newSessionModel(session)
	result := d.db.WithContext(ctx).Model(&sessionModel{}).Where("id = ?", model.ID).Select("*").Omit("id").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: session %d", ErrNotFound, model.ID)
	}
	return nil
}

func sessionEntities(models []sessionModel) ([]entities.Session, error) {
	sessions := make([]entities.Session, 0, len(models))
	for _, m := range models {
		session, err := m.entity()
		if err != nil {
			return nil, fmt.Errorf("error reading session %d: %w", m.ID, err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
