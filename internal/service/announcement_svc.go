package service

import (
	"context"
	"time"

	"property_mgmt_v1/internal/model"
	"property_mgmt_v1/internal/repository"
)

// AnnouncementService 社区公告服务
type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// FindLatest 按发布时间倒序返回最近 10 条
func (s *AnnouncementService) FindLatest(ctx context.Context) ([]model.Announcement, error) {
	announcements, err := s.announcementRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(announcements) > 10 {
		announcements = announcements[:10]
	}
	return announcements, nil
}

// Create 发布公告，未指定发布时间时立即发布
func (s *AnnouncementService) Create(ctx context.Context, announcement *model.Announcement) error {
	if announcement.PublishAt == nil {
		now := time.Now()
		announcement.PublishAt = &now
	}
	return s.announcementRepo.Create(ctx, announcement)
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, input *model.Announcement) (*model.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrAnnouncementNotFound
	}

	announcement.Title = input.Title
	announcement.Content = input.Content
	announcement.TargetScope = input.TargetScope

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if announcement == nil {
		return ErrAnnouncementNotFound
	}
	return s.announcementRepo.Delete(ctx, id)
}
