// Package problem loads a FOND HTN problem description from JSON (spec
// §6's problem-file format) into the fact table, domain catalog, initial
// state, and initial task network the search packages operate on. Struct
// tags follow the teacher pack's go-playground/validator/v10 convention
// for declarative field validation (grounded on
// jinterlante1206-AleutianLocal's datatypes package).
package problem
