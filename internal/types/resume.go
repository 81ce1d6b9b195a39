// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionType identifies the shape of a resume section's payload.
type SectionType string

// Section type variants. personalInfo is reserved for the built-in contact
// block; the other three are the shapes a custom section may take.
const (
	SectionTypeText         SectionType = "text"
	SectionTypeItemList     SectionType = "itemList"
	SectionTypeStringList   SectionType = "stringList"
	SectionTypePersonalInfo SectionType = "personalInfo"
)

// PersonalInfo represents the contact block at the top of a resume
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// SectionItem represents one entry in an item-list section (a job, a degree, a project).
// ID is unique within its containing list; see sections.NextItemID for the allocation rule.
type SectionItem struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Location    string   `json:"location,omitempty"`
	Years       string   `json:"years,omitempty"`
	Description []string `json:"description"`
}

// CustomSectionPayload holds the data of a user-created section. Exactly one
// of Text, Items, or Strings is meaningful, selected by Type.
type CustomSectionPayload struct {
	Type    SectionType   `json:"type"`
	Text    string        `json:"text,omitempty"`
	Items   []SectionItem `json:"items,omitempty"`
	Strings []string      `json:"strings,omitempty"`
}

// SectionMeta describes one section's identity, label, visibility and sort
// position. One entry exists per live section; mutation operators always
// return a fresh list rather than patching entries in place.
type SectionMeta struct {
	ID          string      `json:"id"`
	Key         string      `json:"key"`
	DisplayName string      `json:"displayName"`
	SectionType SectionType `json:"sectionType"`
	IsDefault   bool        `json:"isDefault"`
	IsVisible   bool        `json:"isVisible"`
	Order       int         `json:"order"`
}

// ResumeDocument is the aggregate root for a single resume.
type ResumeDocument struct {
	PersonalInfo     PersonalInfo                    `json:"personalInfo"`
	Summary          string                          `json:"summary"`
	WorkExperience   []SectionItem                   `json:"workExperience"`
	Education        []SectionItem                   `json:"education"`
	PersonalProjects []SectionItem                   `json:"personalProjects"`
	AdditionalInfo   string                          `json:"additionalInfo"`
	SectionMeta      []SectionMeta                   `json:"sectionMeta,omitempty"`
	CustomSections   map[string]CustomSectionPayload `json:"customSections,omitempty"`
}
