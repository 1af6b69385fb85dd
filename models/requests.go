package models

// SignupRequest is the body of POST /signup. The password travels only in
// this inbound direction; it is hashed before storage and never serialised
// back out.
type SignupRequest struct {
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginRequest is the body of POST /login. Either Username or Email may
// carry the account identifier.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResendVerificationRequest is the body of POST /resend-verification.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// EditProfileRequest is the body of PUT /api/edit. Username and email are
// immutable and therefore absent.
type EditProfileRequest struct {
	Fullname    string `json:"fullname"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// WishlistRequest is the body of POST /api/wishlist.
type WishlistRequest struct {
	ProductID string `json:"productId"`
}

// CartAddRequest is the body of POST /api/cart.
type CartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartUpdateRequest is the body of PATCH /api/cart/{itemId}.
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// OrderRequest is the body of POST /api/order.
type OrderRequest struct {
	Address string `json:"address"`
}

// FeedbackRequest is the body of POST /api/feedback.
type FeedbackRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}
