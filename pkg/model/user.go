package model

// Geo is a coordinate pair. The API serialises both parts as strings.
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

// Address is the postal address nested in a User.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo"`
}

// Company is the employer nested in a User.
type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	BS          string `json:"bs" yaml:"bs"`
}

// UserBase carries the fields of a user that a client supplies on create.
type UserBase struct {
	Name     string  `json:"name" yaml:"name"`
	Username string  `json:"username" yaml:"username"`
	Email    string  `json:"email" yaml:"email"`
	Address  Address `json:"address" yaml:"address"`
	Phone    string  `json:"phone" yaml:"phone"`
	Website  string  `json:"website" yaml:"website"`
	Company  Company `json:"company" yaml:"company"`
}

// User is a user as stored by the API.
type User struct {
	ID       int `json:"id" yaml:"id"`
	UserBase `yaml:",inline"`
}

// UserPatch is a partial update. Nil fields are not sent; nested records are
// replaced whole when present.
type UserPatch struct {
	ID       int      `json:"id"`
	Name     *string  `json:"name,omitempty"`
	Username *string  `json:"username,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Website  *string  `json:"website,omitempty"`
	Company  *Company `json:"company,omitempty"`
}
