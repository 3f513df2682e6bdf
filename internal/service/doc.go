// Package service provides application-level services coordinating
// operations that span more than one store. The stores themselves enforce
// nothing across entities; every cross-entity rule lives here.
package service
