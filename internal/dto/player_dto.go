// FILE: internal/dto/player_dto.go
package dto

type LoginFlowRequest struct {
	ApiId string `query:"apiId" validate:"required"`
	Code  string `query:"code"`
}

type LoginFlowResponse struct {
	Username    string `json:"username"`
	UserId      int64  `json:"userId"`
	Avatar      string `json:"avatar"`
	AccessToken string `json:"access_token"`
}
