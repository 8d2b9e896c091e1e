package shop

type CreateOrderReq struct {
	Name      string   `form:"name" json:"name" query:"name"`
	Phone     string   `form:"phone" json:"phone" query:"phone"`
	LessonIDs []string `form:"lessonIDs" json:"lessonIDs" query:"lessonIDs"`
}

type CreateOrderResp struct {
	InsertedID string `json:"insertedId"`
}
