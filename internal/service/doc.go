// Package service contains the application workflows that orchestrate the
// domain entities over the store interfaces: session handling, pet CRUD with
// input defaulting, and the adoption transaction workflow.
package service
