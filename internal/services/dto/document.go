package dto

import "jobtracker_backend/internal/models"

type GenerateDocumentRequest struct {
	JobID        string              `json:"job_id" validate:"required,max=36"`
	DocumentType models.DocumentKind `json:"document_type" validate:"required,is-document-kind"`
}

// GeneratedDocumentResponse - результат генерации, в БД не сохраняется
type GeneratedDocumentResponse struct {
	Content      string              `json:"content"`
	DocumentType models.DocumentKind `json:"document_type"`
	JobID        string              `json:"job_id"`
}
