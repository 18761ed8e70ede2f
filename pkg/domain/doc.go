// Package domain contains the core domain entities of the contract scanning
// pipeline: ingested emails, their attachments going through the external
// scan engine, and the contract records derived from scan results. These
// types are free of infrastructure concerns so they can be shared across
// packages.
package domain
