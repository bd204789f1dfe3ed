package response_models

import "aistore/internal/models/db_models"

type LoginResponse struct {
	Token   string             `json:"token"`
	Profile *db_models.Profile `json:"profile"`
}
