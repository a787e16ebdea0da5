package entity

import "time"

// Photo is an image attached to a property. DataURI carries the inline
// payload; when object storage is configured the payload is offloaded and
// ObjectKey points at it instead.
type Photo struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Filename   string    `json:"filename"`
	DataURI    string    `json:"dataUri,omitempty"`
	ObjectKey  string    `json:"objectKey,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
