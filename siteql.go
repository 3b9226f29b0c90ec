// Package siteql provides a small interactive web scraping tool with an
// AI query assistant. It collects same-domain links from a seed page,
// extracts page text into a SQLite table, and answers natural language
// questions about the stored data by delegating SQL generation to a
// hosted language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package siteql
