package domain

// CheckPhoneRequest - запрос на проверку номера (POST-вариант)
type CheckPhoneRequest struct {
	Phone string `json:"phone"`
}

// CheckPhoneResponse - единый ответ сервиса: одна строка с результатом,
// будь то @username или текст ошибки
type CheckPhoneResponse struct {
	Result string `json:"result"`
}
