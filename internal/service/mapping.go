package service

import (
	"github.com/MKhiriev/go-id-wallet/internal/document"
	"github.com/MKhiriev/go-id-wallet/models"
)

func documentFromDTO(dto models.DocumentDTO) models.DocumentRecord {
	fallback := models.DocumentMetadata{
		Type:       dto.DocType,
		Number:     dto.DocNumber,
		IssueDate:  dto.IssueDate,
		ExpiryDate: dto.ExpiryDate,
	}
	if fallback.Type == "" {
		fallback.Type = models.DefaultDocumentType
	}
	if !dto.CreatedAt.IsZero() {
		fallback.CreatedAt = dto.CreatedAt.UTC().Format(models.TimestampLayout)
	}

	return models.DocumentRecord{
		ID:          dto.ID,
		Hash:        dto.Hash,
		Owner:       dto.OwnerPublicKey,
		MetadataURI: dto.MetadataURI,
		Metadata:    document.Decode(dto.MetadataURI, &fallback),
		SharedWith:  nonNilClone(dto.SharedWith),
	}
}

func documentsFromDTO(dtos []models.DocumentDTO) []models.DocumentRecord {
	out := make([]models.DocumentRecord, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, documentFromDTO(dto))
	}
	return out
}

func permissionFromDTO(dto models.PermissionDTO) models.PermissionRecord {
	return models.PermissionRecord{
		DocumentID: dto.DocumentID,
		Owner:      dto.OwnerPublicKey,
		Target:     dto.TargetPublicKey,
		GrantedAt:  dto.GrantedAt,
	}
}

func identityFromDTO(dto models.IdentityDTO) models.IdentityRecord {
	return models.IdentityRecord{
		ID:            dto.PublicKey,
		PublicAddress: dto.PublicKey,
		DisplayName:   dto.FullName,
		Verified:      true,
		CreatedAt:     dto.CreatedAt,
		Transaction:   dto.Transaction,
	}
}
