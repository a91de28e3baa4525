package graph

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/suite"
)

func TestSchema(t *testing.T) {
	suite.Run(t, new(SchemaSuite))
}

type SchemaSuite struct {
	suite.Suite
	db     *database.DB
	schema graphql.Schema
	owner  *models.User
	other  *models.User
}

func (s *SchemaSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := repositories.NewUserRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)

	passwordService := services.NewPasswordService(&config.SecurityConfig{
		BCryptCost:        4,
		PasswordMinLength: 8,
	})
	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: 15 * time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})

	resolver := &Resolver{
		Categories:   services.NewCategoryService(categoryRepo, transactionRepo, logger),
		Transactions: services.NewTransactionService(transactionRepo, categoryRepo, logger),
		Auth:         services.NewAuthService(userRepo, passwordService, tokenService, logger),
		Logger:       logger,
	}

	s.schema, err = NewSchema(resolver)
	s.Require().NoError(err)

	s.owner = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.other = database.CreateTestUser(s.T(), s.db, "other@example.com")
}

func (s *SchemaSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SchemaSuite) exec(userID uuid.UUID, query string, variables map[string]interface{}) *graphql.Result {
	ctx := context.Background()
	if userID != uuid.Nil {
		ctx = WithUserID(ctx, userID)
	}
	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

func (s *SchemaSuite) errorCode(result *graphql.Result) string {
	s.Require().NotEmpty(result.Errors)
	code, _ := result.Errors[0].Extensions["code"].(string)
	return code
}

func (s *SchemaSuite) createCategory(userID uuid.UUID, title, icon, color string) map[string]interface{} {
	result := s.exec(userID, `
		mutation ($input: CreateCategoryInput!) {
			createCategory(input: $input) { id title icon color userId }
		}`,
		map[string]interface{}{
			"input": map[string]interface{}{
				"title": title,
				"icon":  icon,
				"color": color,
			},
		})
	s.Require().Empty(result.Errors, "createCategory failed: %v", result.Errors)
	return result.Data.(map[string]interface{})["createCategory"].(map[string]interface{})
}

func (s *SchemaSuite) createTransaction(userID uuid.UUID, categoryID string, txType string, amount float64) map[string]interface{} {
	result := s.exec(userID, `
		mutation ($input: CreateTransactionInput!) {
			createTransaction(input: $input) { id type amount description categoryId }
		}`,
		map[string]interface{}{
			"input": map[string]interface{}{
				"type":        txType,
				"description": "Lunch downtown",
				"date":        time.Now().Format(time.RFC3339),
				"amount":      amount,
				"categoryId":  categoryID,
			},
		})
	s.Require().Empty(result.Errors, "createTransaction failed: %v", result.Errors)
	return result.Data.(map[string]interface{})["createTransaction"].(map[string]interface{})
}

func (s *SchemaSuite) TestUnauthenticatedQueryIsRejected() {
	result := s.exec(uuid.Nil, `{ listCategories { id } }`, nil)
	s.Equal("AUTH_002", s.errorCode(result))
}

func (s *SchemaSuite) TestCreateAndListCategories() {
	s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	s.createCategory(s.owner.ID, "Transport", models.IconCarFront, models.ColorYellow)
	s.createCategory(s.other.ID, "Travel", models.IconBaggageClaim, models.ColorPink)

	result := s.exec(s.owner.ID, `{ listCategories { title icon color } }`, nil)
	s.Require().Empty(result.Errors)

	categories := result.Data.(map[string]interface{})["listCategories"].([]interface{})
	s.Len(categories, 2)
	// Creation order is preserved
	s.Equal("Food", categories[0].(map[string]interface{})["title"])
	s.Equal("Transport", categories[1].(map[string]interface{})["title"])
}

func (s *SchemaSuite) TestCreateCategory_InvalidIcon() {
	result := s.exec(s.owner.ID, `
		mutation {
			createCategory(input: {title: "Food", icon: "spoon", color: "blue"}) { id }
		}`, nil)
	s.Equal("CATEGORY_003", s.errorCode(result))
}

func (s *SchemaSuite) TestCreateCategory_TitleTooLong() {
	result := s.exec(s.owner.ID, `
		mutation ($title: String!) {
			createCategory(input: {title: $title, icon: "utensils", color: "green"}) { id }
		}`, map[string]interface{}{"title": strings.Repeat("x", 101)})
	s.Equal("VALIDATION_001", s.errorCode(result))
}

func (s *SchemaSuite) TestCreateTransaction_BlankDescription() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)

	result := s.exec(s.owner.ID, `
		mutation ($input: CreateTransactionInput!) {
			createTransaction(input: $input) { id }
		}`,
		map[string]interface{}{
			"input": map[string]interface{}{
				"type":        "debit",
				"description": "",
				"date":        time.Now().Format(time.RFC3339),
				"amount":      10,
				"categoryId":  category["id"],
			},
		})
	s.Equal("VALIDATION_002", s.errorCode(result))
}

func (s *SchemaSuite) TestGetCategory_ForeignOwnerIsNotFound() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)

	result := s.exec(s.other.ID, `
		query ($id: ID!) { getCategory(id: $id) { id } }`,
		map[string]interface{}{"id": category["id"]})
	s.Equal("CATEGORY_001", s.errorCode(result))
}

func (s *SchemaSuite) TestTransactionWithNestedCategory() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	s.createTransaction(s.owner.ID, category["id"].(string), "debit", 50)

	result := s.exec(s.owner.ID, `
		{
			listTransactions {
				type
				amount
				category { title icon }
			}
		}`, nil)
	s.Require().Empty(result.Errors, "listTransactions failed: %v", result.Errors)

	transactions := result.Data.(map[string]interface{})["listTransactions"].([]interface{})
	s.Require().Len(transactions, 1)

	transaction := transactions[0].(map[string]interface{})
	s.Equal("debit", transaction["type"])
	s.Equal(50.0, transaction["amount"])
	s.Equal("Food", transaction["category"].(map[string]interface{})["title"])
}

func (s *SchemaSuite) TestCreateTransaction_ForeignCategoryIsNotFound() {
	category := s.createCategory(s.other.ID, "Travel", models.IconBaggageClaim, models.ColorPink)

	result := s.exec(s.owner.ID, `
		mutation ($input: CreateTransactionInput!) {
			createTransaction(input: $input) { id }
		}`,
		map[string]interface{}{
			"input": map[string]interface{}{
				"type":        "debit",
				"description": "Flight",
				"date":        time.Now().Format(time.RFC3339),
				"amount":      300.0,
				"categoryId":  category["id"],
			},
		})
	s.Equal("CATEGORY_001", s.errorCode(result))
}

func (s *SchemaSuite) TestUpdateTransaction_Partial() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	transaction := s.createTransaction(s.owner.ID, category["id"].(string), "debit", 50)

	result := s.exec(s.owner.ID, `
		mutation ($id: ID!) {
			updateTransaction(id: $id, input: {amount: 75.5}) {
				amount
				description
			}
		}`,
		map[string]interface{}{"id": transaction["id"]})
	s.Require().Empty(result.Errors, "updateTransaction failed: %v", result.Errors)

	updated := result.Data.(map[string]interface{})["updateTransaction"].(map[string]interface{})
	s.Equal(75.5, updated["amount"])
	// Untouched fields remain
	s.Equal("Lunch downtown", updated["description"])
}

func (s *SchemaSuite) TestDeleteCategory_WithTransactionsIsConflict() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	s.createTransaction(s.owner.ID, category["id"].(string), "debit", 50)

	result := s.exec(s.owner.ID, `
		mutation ($id: ID!) { deleteCategory(id: $id) }`,
		map[string]interface{}{"id": category["id"]})
	s.Equal("CATEGORY_002", s.errorCode(result))
}

func (s *SchemaSuite) TestDeleteCategory() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)

	result := s.exec(s.owner.ID, `
		mutation ($id: ID!) { deleteCategory(id: $id) }`,
		map[string]interface{}{"id": category["id"]})
	s.Require().Empty(result.Errors)
	s.Equal(true, result.Data.(map[string]interface{})["deleteCategory"])

	listed := s.exec(s.owner.ID, `{ listCategories { id } }`, nil)
	s.Require().Empty(listed.Errors)
	s.Empty(listed.Data.(map[string]interface{})["listCategories"])
}

func (s *SchemaSuite) TestDeleteTransaction() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	transaction := s.createTransaction(s.owner.ID, category["id"].(string), "debit", 50)

	result := s.exec(s.owner.ID, `
		mutation ($id: ID!) { deleteTransaction(id: $id) }`,
		map[string]interface{}{"id": transaction["id"]})
	s.Require().Empty(result.Errors)
	s.Equal(true, result.Data.(map[string]interface{})["deleteTransaction"])

	listed := s.exec(s.owner.ID, `{ listTransactions { id } }`, nil)
	s.Require().Empty(listed.Errors)
	s.Empty(listed.Data.(map[string]interface{})["listTransactions"])
}

func (s *SchemaSuite) TestDashboard() {
	category := s.createCategory(s.owner.ID, "Salary", models.IconBriefcaseBusiness, models.ColorGreen)
	s.createTransaction(s.owner.ID, category["id"].(string), "credit", 100)
	s.createTransaction(s.owner.ID, category["id"].(string), "debit", 40)

	result := s.exec(s.owner.ID, `
		{
			dashboard {
				balance
				monthlyIncome
				monthlyExpense
				byCategory { categoryId count total }
				recent { id }
			}
		}`, nil)
	s.Require().Empty(result.Errors, "dashboard failed: %v", result.Errors)

	dashboard := result.Data.(map[string]interface{})["dashboard"].(map[string]interface{})
	s.Equal(60.0, dashboard["balance"])
	s.Equal(100.0, dashboard["monthlyIncome"])
	s.Equal(40.0, dashboard["monthlyExpense"])

	byCategory := dashboard["byCategory"].([]interface{})
	s.Require().Len(byCategory, 1)
	s.Equal(category["id"], byCategory[0].(map[string]interface{})["categoryId"])
	s.Equal(2, byCategory[0].(map[string]interface{})["count"])
	s.Equal(140.0, byCategory[0].(map[string]interface{})["total"])

	s.Len(dashboard["recent"].([]interface{}), 2)
}

func (s *SchemaSuite) TestSearchTransactions_Pagination() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	for i := 0; i < 23; i++ {
		s.createTransaction(s.owner.ID, category["id"].(string), "debit", float64(i+1))
	}

	result := s.exec(s.owner.ID, `
		{
			searchTransactions(page: 3) {
				items { id }
				page
				totalPages
				totalItems
			}
		}`, nil)
	s.Require().Empty(result.Errors, "searchTransactions failed: %v", result.Errors)

	page := result.Data.(map[string]interface{})["searchTransactions"].(map[string]interface{})
	s.Equal(3, page["page"])
	s.Equal(3, page["totalPages"])
	s.Equal(23, page["totalItems"])
	s.Len(page["items"].([]interface{}), 3)

	// Out-of-range pages clamp instead of failing
	result = s.exec(s.owner.ID, `{ searchTransactions(page: 4) { page } }`, nil)
	s.Require().Empty(result.Errors)
	s.Equal(3, result.Data.(map[string]interface{})["searchTransactions"].(map[string]interface{})["page"])

	result = s.exec(s.owner.ID, `{ searchTransactions(page: 0) { page } }`, nil)
	s.Require().Empty(result.Errors)
	s.Equal(1, result.Data.(map[string]interface{})["searchTransactions"].(map[string]interface{})["page"])
}

func (s *SchemaSuite) TestSearchTransactions_SearchAndType() {
	category := s.createCategory(s.owner.ID, "Food", models.IconUtensils, models.ColorBlue)
	s.createTransaction(s.owner.ID, category["id"].(string), "debit", 10)
	s.createTransaction(s.owner.ID, category["id"].(string), "credit", 20)

	result := s.exec(s.owner.ID, `
		{
			searchTransactions(search: "LUNCH", type: credit) {
				items { type }
				totalItems
			}
		}`, nil)
	s.Require().Empty(result.Errors, "searchTransactions failed: %v", result.Errors)

	page := result.Data.(map[string]interface{})["searchTransactions"].(map[string]interface{})
	s.Equal(1, page["totalItems"])
	items := page["items"].([]interface{})
	s.Equal("credit", items[0].(map[string]interface{})["type"])
}

func (s *SchemaSuite) TestMe() {
	result := s.exec(s.owner.ID, `{ me { id email name } }`, nil)
	s.Require().Empty(result.Errors)

	me := result.Data.(map[string]interface{})["me"].(map[string]interface{})
	s.Equal(s.owner.ID.String(), me["id"])
	s.Equal(s.owner.Email, me["email"])
}
