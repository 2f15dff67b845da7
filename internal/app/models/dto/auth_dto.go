package dto

// StudentRegisterRequest registers a new student account
type StudentRegisterRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	YearOfStudy int    `json:"yearOfStudy" binding:"required,gte=1,lte=6"`
	Email       string `json:"email" binding:"required,email"`
	ContactNo   string `json:"contactNo" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// OrganisationRegisterRequest registers a new organisation account
type OrganisationRegisterRequest struct {
	OrgName      string `json:"orgName" binding:"required"`
	IndustryID   int64  `json:"industryId" binding:"required"`
	Street       string `json:"street" binding:"required"`
	PlotNo       string `json:"plotNo" binding:"required"`
	ContactNo    string `json:"contactNo" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

// AdminRegisterRequest registers a new administrator account
type AdminRegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// StudentLoginRequest authenticates a student by registration number
type StudentLoginRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// OrganisationLoginRequest authenticates an organisation by contact email
type OrganisationLoginRequest struct {
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
}

// AdminLoginRequest authenticates an administrator
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and the profile
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
	Role      string      `json:"role"`
	Profile   interface{} `json:"profile"`
}

// ChangePasswordRequest rotates an account password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
