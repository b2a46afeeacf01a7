// Package snapshot provides durable-storage implementations of the
// SnapshotRepository port: a JSON file backend and a MongoDB backend.
//
// Both serialize through the record types below, which pin the on-disk field
// names (including password_hash and api_key, which the domain types hide
// from API responses).
package snapshot

import (
	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

type userRecord struct {
	ID           string `json:"id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	Name         string `json:"name" bson:"name"`
	Role         string `json:"role" bson:"role"`
	PasswordHash string `json:"password_hash" bson:"password_hash"`
	CreatedAt    string `json:"created_at" bson:"created_at"`
	LastLogin    string `json:"last_login" bson:"last_login"`
	APIKey       string `json:"api_key" bson:"api_key"`
}

type propertyRecord struct {
	ID         string `json:"id" bson:"_id"`
	HostID     string `json:"host_id" bson:"host_id"`
	Name       string `json:"name" bson:"name"`
	Address    string `json:"address" bson:"address"`
	CleanerID  string `json:"cleaner_id" bson:"cleaner_id"`
	AccessCode string `json:"access_code" bson:"access_code"`
	Notes      string `json:"notes" bson:"notes"`
}

type bookingRecord struct {
	ID               string `json:"id" bson:"_id"`
	PropertyID       string `json:"property_id" bson:"property_id"`
	HostID           string `json:"host_id" bson:"host_id"`
	CleanerID        string `json:"cleaner_id" bson:"cleaner_id"`
	CheckIn          string `json:"check_in" bson:"check_in"`
	CheckOut         string `json:"check_out" bson:"check_out"`
	Status           string `json:"status" bson:"status"`
	Notes            string `json:"notes" bson:"notes"`
	CreatedAt        string `json:"created_at" bson:"created_at"`
	UpdatedAt        string `json:"updated_at" bson:"updated_at"`
	HostConfirmed    bool   `json:"host_confirmed" bson:"host_confirmed"`
	CleanerConfirmed bool   `json:"cleaner_confirmed" bson:"cleaner_confirmed"`
}

type fileDocument struct {
	Users      []userRecord     `json:"users"`
	Properties []propertyRecord `json:"properties"`
	Bookings   []bookingRecord  `json:"bookings"`
}

func toRecords(snap *ports.Snapshot) *fileDocument {
	doc := &fileDocument{
		Users:      make([]userRecord, 0, len(snap.Users)),
		Properties: make([]propertyRecord, 0, len(snap.Properties)),
		Bookings:   make([]bookingRecord, 0, len(snap.Bookings)),
	}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, userRecord{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
			LastLogin:    u.LastLogin,
			APIKey:       u.Token,
		})
	}
	for _, p := range snap.Properties {
		doc.Properties = append(doc.Properties, propertyRecord{
			ID:         p.ID,
			HostID:     p.HostID,
			Name:       p.Name,
			Address:    p.Address,
			CleanerID:  p.CleanerID,
			AccessCode: p.AccessCode,
			Notes:      p.Notes,
		})
	}
	for _, b := range snap.Bookings {
		doc.Bookings = append(doc.Bookings, bookingRecord{
			ID:               b.ID,
			PropertyID:       b.PropertyID,
			HostID:           b.HostID,
			CleanerID:        b.CleanerID,
			CheckIn:          b.CheckIn,
			CheckOut:         b.CheckOut,
			Status:           string(b.Status),
			Notes:            b.Notes,
			CreatedAt:        b.CreatedAt,
			UpdatedAt:        b.UpdatedAt,
			HostConfirmed:    b.HostConfirmed,
			CleanerConfirmed: b.CleanerConfirmed,
		})
	}
	return doc
}

func fromRecords(doc *fileDocument) *ports.Snapshot {
	snap := &ports.Snapshot{
		Users:      make([]domain.User, 0, len(doc.Users)),
		Properties: make([]domain.Property, 0, len(doc.Properties)),
		Bookings:   make([]domain.Booking, 0, len(doc.Bookings)),
	}
	for _, u := range doc.Users {
		snap.Users = append(snap.Users, domain.User{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
			LastLogin:    u.LastLogin,
			Token:        u.APIKey,
		})
	}
	for _, p := range doc.Properties {
		snap.Properties = append(snap.Properties, domain.Property{
			ID:         p.ID,
			HostID:     p.HostID,
			Name:       p.Name,
			Address:    p.Address,
			CleanerID:  p.CleanerID,
			AccessCode: p.AccessCode,
			Notes:      p.Notes,
		})
	}
	for _, b := range doc.Bookings {
		snap.Bookings = append(snap.Bookings, domain.Booking{
			ID:               b.ID,
			PropertyID:       b.PropertyID,
			HostID:           b.HostID,
			CleanerID:        b.CleanerID,
			CheckIn:          b.CheckIn,
			CheckOut:         b.CheckOut,
			Status:           domain.BookingStatus(b.Status),
			Notes:            b.Notes,
			CreatedAt:        b.CreatedAt,
			UpdatedAt:        b.UpdatedAt,
			HostConfirmed:    b.HostConfirmed,
			CleanerConfirmed: b.CleanerConfirmed,
		})
	}
	return snap
}
