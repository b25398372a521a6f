package model

// Ptr returns a pointer to v. It keeps patch literals short:
//
//	model.PostPatch{ID: 1, Body: model.Ptr("updated")}
func Ptr[T any](v T) *T {
	return &v
}
