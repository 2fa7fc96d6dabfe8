package domain

import "errors"

var (
	// ErrNotFound signals an unknown entity id on lookup, update or delete.
	ErrNotFound = errors.New("no encontrado")

	// ErrDuplicateCategory signals that the derived category slug collides
	// with an existing category.
	ErrDuplicateCategory = errors.New("la categoría ya existe")

	// ErrCategoryInUse signals a delete attempt on a category that at least
	// one product still references.
	ErrCategoryInUse = errors.New("la categoría tiene productos asignados")

	// ErrStorageQuotaExceeded signals that a write would exceed the storage
	// budget. The remedy is freeing space, typically by stripping images.
	ErrStorageQuotaExceeded = errors.New("almacenamiento lleno")

	// ErrUnsupportedImageFormat signals an upload whose declared content
	// type is neither JPEG nor PNG.
	ErrUnsupportedImageFormat = errors.New("formato de imagen no soportado")

	// ErrInvalidImportFormat signals a backup document that cannot be
	// parsed or lacks a products list.
	ErrInvalidImportFormat = errors.New("archivo de respaldo inválido")
)
