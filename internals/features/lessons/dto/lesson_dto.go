package dto

import (
	"kelasvideo_backend/internals/features/lessons/model"
)

type VideoResponse struct {
	VideoID             string `json:"video_id"`
	VideoLessonID       string `json:"video_lesson_id"`
	VideoURL            string `json:"video_url"`
	VideoLanguage       string `json:"video_language"`
	VideoApprovalStatus string `json:"video_approval_status"`
}

func ToVideoResponse(v *model.VideoModel) VideoResponse {
	return VideoResponse{
		VideoID:             v.VideoID.String(),
		VideoLessonID:       v.VideoLessonID.String(),
		VideoURL:            v.VideoURL,
		VideoLanguage:       v.VideoLanguage,
		VideoApprovalStatus: string(v.VideoApprovalStatus),
	}
}

func ToVideoResponseList(vs []model.VideoModel) []VideoResponse {
	out := make([]VideoResponse, 0, len(vs))
	for i := range vs {
		out = append(out, ToVideoResponse(&vs[i]))
	}
	return out
}

type LessonResponse struct {
	LessonID           string          `json:"lesson_id"`
	LessonTitle        string          `json:"lesson_title"`
	LessonCategory     string          `json:"lesson_category"`
	LessonThumbnailURL *string         `json:"lesson_thumbnail_url,omitempty"`
	Videos             []VideoResponse `json:"videos"`
}

func ToLessonResponse(l *model.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:           l.LessonID.String(),
		LessonTitle:        l.LessonTitle,
		LessonCategory:     l.LessonCategory,
		LessonThumbnailURL: l.LessonThumbnailURL,
		Videos:             ToVideoResponseList(l.Videos),
	}
}

func ToLessonResponseList(ls []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(ls))
	for i := range ls {
		out = append(out, ToLessonResponse(&ls[i]))
	}
	return out
}
