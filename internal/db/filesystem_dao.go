package db

import (
	"context"
	"fmt"

	"github.com/ula-apps/appstartup/core/entities"
	"github.com/ula-apps/appstartup/internal/startup"
	"gorm.io/gorm"
)

type FilesystemDao struct {
	db *gorm.DB
}

var _ startup.FilesystemStore = &FilesystemDao{}

func (d *FilesystemDao) AllFilesystems(ctx context.Context) ([]entities.Filesystem, error) {
	var models []filesystemModel
	err := d.db.WithContext(ctx).Order("id").Find(&models).Error
	if err != nil {
		return nil, err
	}
	return filesystemEntities(models), nil
}

func (d *FilesystemDao) FindAppsFilesystemByType(ctx context.Context, distributionType string) ([]entities.Filesystem, error) {
	var models []filesystemModel
	err := d.db.WithContext(ctx).
		Where("is_apps_filesystem = ? AND distribution_type = ?", true, distributionType).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return filesystemEntities(models), nil
}

func (d *FilesystemDao) InsertFilesystem(ctx context.Context, filesystem entities.Filesystem) (int64, error) {
	model := newFilesystemModel(filesystem)
	err := d.db.WithContext(ctx).Create(&model).Error
	if err != nil {
		return 0, err
	}
	return model.ID, nil
}

// UpdateFilesystem overwrites every column of an existing filesystem.
func (d *FilesystemDao) UpdateFilesystem(ctx context.Context, filesystem entities.Filesystem) error {
	model := newFilesystemModel(filesystem)
	result := d.db.WithContext(ctx).Model(&filesystemModel{}).Where("id = ?", model.ID).Select("*").Omit("id").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: filesystem %d", ErrNotFound, model.ID)
	}
	return nil
}

func filesystemEntities(models []filesystemModel) []entities.Filesystem {
	filesystems := make([]entities.Filesystem, 0, len(models))
	for _, m := range models {
		filesystems = append(filesystems, m.entity())
	}
	return filesystems
}
