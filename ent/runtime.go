// Code generated by ent, DO NOT EDIT.

package ent

// The schema-stitching logic is generated in github.com/anzhiyu-c/tariff-app/ent/runtime/runtime.go
