package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"medwebcare/config/authorization"
	"medwebcare/config/cache"
	"medwebcare/config/db"
	"medwebcare/models"
	"medwebcare/util"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type SignUpInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"required,oneof=patient doctor"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResult is what every identity operation hands back: the token,
// the resolved profile, and the dashboard route the client should land on.
type AuthResult struct {
	Token    string          `json:"token"`
	User     *models.Profile `json:"user"`
	Redirect string          `json:"redirect"`
}

/*
* Generate a bcrypt hash for the given password
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(dbPassword, inputPassword string) error {
	if strings.TrimSpace(dbPassword) == "" {
		return errors.New(util.INVALID_CREDENTIALS)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(dbPassword), []byte(inputPassword)); err != nil {
		return errors.New(util.INVALID_CREDENTIALS)
	}
	return nil
}

/*
* Validate sign-up input
* Reject an already registered email
* Create the login row, the user_roles row and the profile row
* Hand back a token plus the role's dashboard route
 */
func SignUp(c *gin.Context, input SignUpInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	if err := validate.Struct(input); err != nil {
		log.Println("Error from sign-up validation:", err)
		return nil, err
	}

	logins := db.OpenCollection(util.LoginCollection)
	count, err := logins.CountDocuments(c, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error while counting logins:", err)
		return nil, err
	}
	if count > 0 {
		return nil, errors.New(util.EMAIL_ALREADY_REGISTERED)
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Println("Error while hashing password:", err)
		return nil, err
	}

	userID := uuid.NewString()
	role := models.Role(input.Role)
	now := time.Now()

	login := models.Login{
		UserID:    userID,
		Email:     input.Email,
		Password:  hashed,
		IsActive:  true,
		CreatedAt: now,
	}
	if _, err := logins.InsertOne(c, login); err != nil {
		log.Println("Error while creating login:", err)
		return nil, err
	}

	userRole := models.UserRole{UserID: userID, Role: role}
	if _, err := db.OpenCollection(util.UserRoleCollection).InsertOne(c, userRole); err != nil {
		log.Println("Error while creating user role:", err)
		return nil, err
	}

	profile := models.Profile{
		UserID:    userID,
		Role:      role,
		FullName:  input.FullName,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.OpenCollection(util.ProfileCollection).InsertOne(c, profile); err != nil {
		log.Println("Error while creating profile:", err)
		return nil, err
	}

	token, err := authorization.GenerateJWT(userID, input.Email, string(role), false)
	if err != nil {
		log.Println("Error while generating token:", err)
		return nil, err
	}

	return &AuthResult{Token: token, User: &profile, Redirect: role.DashboardRoute()}, nil
}

/*
* Validate sign-in input
* Fetch the login row and compare passwords
* Resolve the role from user_roles, defaulting to patient
* Reactivate the login and hand back the role's dashboard route
 */
func SignIn(c *gin.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		log.Println("Error from sign-in validation:", err)
		return nil, err
	}

	logins := db.OpenCollection(util.LoginCollection)
	var login models.Login
	err := logins.FindOne(c, bson.M{"email": input.Email}).Decode(&login)
	if err != nil {
		log.Println("Error while fetching login:", err)
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}
	if err := verifyPassword(login.Password, input.Password); err != nil {
		return nil, err
	}

	role := models.RolePatient
	var userRole models.UserRole
	err = db.OpenCollection(util.UserRoleCollection).
		FindOne(c, bson.M{"user_id": login.UserID}).Decode(&userRole)
	if err == nil {
		role = userRole.Role
	} else if err != mongo.ErrNoDocuments {
		log.Println("Error while fetching user role:", err)
	}

	token, err := authorization.GenerateJWT(login.UserID, login.Email, string(role), false)
	if err != nil {
		log.Println("Error while generating token:", err)
		return nil, err
	}

	if _, err := logins.UpdateOne(c, bson.M{"user_id": login.UserID},
		bson.M{"$set": bson.M{"is_active": true}}); err != nil {
		log.Println("Error while activating login:", err)
	}

	var profile models.Profile
	err = db.OpenCollection(util.ProfileCollection).
		FindOne(c, bson.M{"user_id": login.UserID}).Decode(&profile)
	if err != nil {
		log.Println("Error while fetching profile after sign-in:", err)
	}

	return &AuthResult{Token: token, User: &profile, Redirect: role.DashboardRoute()}, nil
}

/*
* Mint an anonymous patient identity for guest browsing
* No login row exists for a guest, the token carries the guest flag
 */
func GuestSignIn(c *gin.Context) (*AuthResult, error) {
	userID := uuid.NewString()
	now := time.Now()
	profile := models.Profile{
		UserID:    userID,
		Role:      models.RolePatient,
		FullName:  "Guest",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := db.OpenCollection(util.ProfileCollection).InsertOne(c, profile); err != nil {
		log.Println("Error while creating guest profile:", err)
		return nil, err
	}

	token, err := authorization.GenerateJWT(userID, "", string(models.RolePatient), true)
	if err != nil {
		log.Println("Error while generating guest token:", err)
		return nil, err
	}
	return &AuthResult{Token: token, User: &profile, Redirect: models.RolePatient.DashboardRoute()}, nil
}

/*
* Deactivate the login row and drop the cached profile
 */
func SignOut(c *gin.Context) error {
	userID := c.GetString("userId")
	if userID == "" {
		return errors.New(util.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	if !c.GetBool("guest") {
		_, err := db.OpenCollection(util.LoginCollection).UpdateOne(c,
			bson.M{"user_id": userID}, bson.M{"$set": bson.M{"is_active": false}})
		if err != nil {
			log.Println("Error while deactivating login:", err)
			return err
		}
	}
	if err := cache.DeleteCache(c, util.ProfileKey+userID); err != nil && err != cache.ErrCacheDisabled {
		log.Println("Error while deleting cached profile:", err)
	}
	return nil
}
