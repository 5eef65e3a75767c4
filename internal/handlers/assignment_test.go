package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/models"
	"github.com/yukikurage/assignment-api/internal/services"
	"github.com/yukikurage/assignment-api/internal/testutils"
	"gorm.io/gorm"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *AssignmentHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *AssignmentHandlerTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.handler = NewAssignmentHandler(services.NewAssignmentService(database.NewPool(suite.db)))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/assignments", suite.handler.ListAssignments)
	suite.router.POST("/assignments", suite.handler.CreateAssignment)
	suite.router.GET("/assignments/:user_id/:task_id", suite.handler.GetAssignment)
	suite.router.PUT("/assignments/:user_id/:task_id", suite.handler.UpdateAssignment)
	suite.router.DELETE("/assignments/:user_id/:task_id", suite.handler.DeleteAssignment)
}

func (suite *AssignmentHandlerTestSuite) createTestAssignment(userID, taskID, statusID int32) *models.Assignment {
	assignment := &models.Assignment{UserID: userID, TaskID: taskID, TaskStatusID: statusID}
	suite.Require().NoError(suite.db.Create(assignment).Error)
	return assignment
}

func (suite *AssignmentHandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AssignmentHandlerTestSuite) TestListAssignments_Empty() {
	w := suite.do(http.MethodGet, "/assignments", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[]`, w.Body.String())
}

func (suite *AssignmentHandlerTestSuite) TestListAssignments_Success() {
	suite.createTestAssignment(1, 1, 1)
	suite.createTestAssignment(2, 1, 2)

	w := suite.do(http.MethodGet, "/assignments", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []models.Assignment
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response, 2)
}

func (suite *AssignmentHandlerTestSuite) TestCreateThenGet() {
	payload := map[string]int{"user_id": 3, "task_id": 8, "task_status_id": 1}

	w := suite.do(http.MethodPost, "/assignments", payload)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"user_id":3,"task_id":8,"task_status_id":1}`, w.Body.String())

	w = suite.do(http.MethodGet, "/assignments/3/8", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"user_id":3,"task_id":8,"task_status_id":1}`, w.Body.String())
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_ZeroIDsAccepted() {
	w := suite.do(http.MethodPost, "/assignments", map[string]int{"user_id": 0, "task_id": 0, "task_status_id": 0})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_Duplicate() {
	suite.createTestAssignment(1, 1, 1)

	w := suite.do(http.MethodPost, "/assignments", map[string]int{"user_id": 1, "task_id": 1, "task_status_id": 2})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_MissingField() {
	w := suite.do(http.MethodPost, "/assignments", map[string]int{"user_id": 1, "task_id": 1})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/assignments", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestCreateAssignment_WrongType() {
	w := suite.do(http.MethodPost, "/assignments", map[string]interface{}{"user_id": "one", "task_id": 1, "task_status_id": 1})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignment_NotFound() {
	w := suite.do(http.MethodGet, "/assignments/1/2", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetAssignment_NonIntegerPath() {
	w := suite.do(http.MethodGet, "/assignments/abc/2", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestUpdateAssignment_Success() {
	suite.createTestAssignment(1, 1, 1)

	w := suite.do(http.MethodPut, "/assignments/1/1", map[string]int{"user_id": 1, "task_id": 1, "task_status_id": 2})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"user_id":1,"task_id":1,"task_status_id":2}`, w.Body.String())

	var stored models.Assignment
	suite.Require().NoError(suite.db.Where("user_id = ? AND task_id = ?", 1, 1).Take(&stored).Error)
	assert.Equal(suite.T(), int32(2), stored.TaskStatusID)
}

func (suite *AssignmentHandlerTestSuite) TestUpdateAssignment_BodyRekeysRow() {
	suite.createTestAssignment(1, 1, 1)

	w := suite.do(http.MethodPut, "/assignments/1/1", map[string]int{"user_id": 2, "task_id": 9, "task_status_id": 1})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	assert.Equal(suite.T(), http.StatusNotFound, suite.do(http.MethodGet, "/assignments/1/1", nil).Code)
	assert.Equal(suite.T(), http.StatusOK, suite.do(http.MethodGet, "/assignments/2/9", nil).Code)
}

func (suite *AssignmentHandlerTestSuite) TestUpdateAssignment_MissingKeyCreatesNoRow() {
	w := suite.do(http.MethodPut, "/assignments/4/4", map[string]int{"user_id": 4, "task_id": 4, "task_status_id": 1})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/assignments/4/4", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestDeleteAssignment_Idempotent() {
	suite.createTestAssignment(1, 1, 1)

	w := suite.do(http.MethodDelete, "/assignments/1/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "1", w.Body.String())

	assert.Equal(suite.T(), http.StatusNotFound, suite.do(http.MethodGet, "/assignments/1/1", nil).Code)

	for i := 0; i < 2; i++ {
		w = suite.do(http.MethodDelete, "/assignments/1/1", nil)
		assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	}
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
