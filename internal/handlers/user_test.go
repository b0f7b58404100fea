package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/models"
	"github.com/ozgurgul/taskdemo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	store   *store.Store
	handler *UserHandler
}

// SetupTest runs before each test
func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.store = store.New()
	suite.handler = NewUserHandler(suite.store)
}

// Helper to build a request context, optionally with a JSON body and an
// :id path parameter.
func (suite *UserHandlerTestSuite) newContext(method, url string, body any, id string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		buf, err := json.Marshal(body)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(buf))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	c.Request = req
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	return c, w
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	c, w := suite.newContext("POST", "/users", gin.H{"name": "Alice", "email": "alice@example.com", "age": 30}, "")

	suite.handler.CreateUser(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var user models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	assert.NotEmpty(suite.T(), user.ID)
	assert.Equal(suite.T(), "Alice", user.Name)
	suite.Require().NotNil(user.Age)
	assert.Equal(suite.T(), 30, *user.Age)
}

func (suite *UserHandlerTestSuite) TestCreateUser_MissingFields() {
	c, w := suite.newContext("POST", "/users", gin.H{"name": "Alice"}, "")

	suite.handler.CreateUser(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Empty(suite.T(), suite.store.ListUsers())
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.store.CreateUser("Alice", "alice@example.com", nil)
	suite.store.CreateUser("Bob", "bob@example.com", nil)

	c, w := suite.newContext("GET", "/users", nil, "")
	suite.handler.ListUsers(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var users []models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(suite.T(), users, 2)
}

func (suite *UserHandlerTestSuite) TestGetUser_Success() {
	created := suite.store.CreateUser("Alice", "alice@example.com", nil)

	c, w := suite.newContext("GET", "/users/"+created.ID, nil, created.ID)
	suite.handler.GetUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var user models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(suite.T(), created.ID, user.ID)
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	c, w := suite.newContext("GET", "/users/missing", nil, "missing")
	suite.handler.GetUser(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "NOT_FOUND", body["code"])
}

func (suite *UserHandlerTestSuite) TestUpdateUser_Success() {
	created := suite.store.CreateUser("Alice", "alice@example.com", nil)

	c, w := suite.newContext("PUT", "/users/"+created.ID, gin.H{"name": "Alicia", "email": "alicia@example.com"}, created.ID)
	suite.handler.UpdateUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var user models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(suite.T(), "Alicia", user.Name)
	assert.Equal(suite.T(), created.ID, user.ID)
}

func (suite *UserHandlerTestSuite) TestUpdateUser_NotFound() {
	c, w := suite.newContext("PUT", "/users/missing", gin.H{"name": "X", "email": "x@example.com"}, "missing")
	suite.handler.UpdateUser(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_CascadesTasks() {
	user := suite.store.CreateUser("Alice", "alice@example.com", nil)
	task, err := suite.store.CreateTask("owned", nil, &user.ID)
	suite.Require().NoError(err)

	c, w := suite.newContext("DELETE", "/users/"+user.ID, nil, user.ID)
	suite.handler.DeleteUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	_, err = suite.store.GetUser(user.ID)
	assert.ErrorIs(suite.T(), err, store.ErrUserNotFound)
	_, err = suite.store.GetTask(task.ID)
	assert.ErrorIs(suite.T(), err, store.ErrTaskNotFound)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_NotFound() {
	c, w := suite.newContext("DELETE", "/users/missing", nil, "missing")
	suite.handler.DeleteUser(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
