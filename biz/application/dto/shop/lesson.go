package shop

type GetLessonReq struct {
	ID string `path:"id" json:"id"`
}

type SearchLessonsReq struct {
	Q string `query:"q" json:"q"`
}

// UpdateLessonReq Fields 为任意字段集合，由 controller 从原始 body 解出，
// 不经过 schema 校验
type UpdateLessonReq struct {
	ID     string `path:"id" json:"id"`
	Fields map[string]any
}

type UpdateLessonResp struct {
	Ok bool `json:"ok"`
}
