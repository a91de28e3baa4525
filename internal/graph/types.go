package graph

import (
	"log/slog"

	apperrors "fintrack/internal/errors"

	"fintrack/internal/insights"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// Resolver carries the services the schema resolvers run against
type Resolver struct {
	Categories   services.CategoryServiceInterface
	Transactions services.TransactionServiceInterface
	Auth         services.AuthServiceInterface
	Logger       *slog.Logger
}

func (r *Resolver) requireUser(p graphql.ResolveParams) (uuid.UUID, error) {
	userID, ok := UserIDFromContext(p.Context)
	if !ok {
		return uuid.Nil, apperrors.New(apperrors.AuthMissingToken)
	}
	return userID, nil
}

// Lists hand out struct values while single lookups hand out pointers;
// the per-field resolvers accept either shape.

func userFromSource(src interface{}) *models.User {
	switch u := src.(type) {
	case *models.User:
		return u
	case models.User:
		return &u
	}
	return nil
}

func categoryFromSource(src interface{}) *models.Category {
	switch c := src.(type) {
	case *models.Category:
		return c
	case models.Category:
		return &c
	}
	return nil
}

func transactionFromSource(src interface{}) *models.Transaction {
	switch t := src.(type) {
	case *models.Transaction:
		return t
	case models.Transaction:
		return &t
	}
	return nil
}

func (b *schemaBuilder) buildUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFromSource(p.Source).ID.String(), nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFromSource(p.Source).Email, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFromSource(p.Source).Name, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFromSource(p.Source).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFromSource(p.Source).UpdatedAt, nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildCategoryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).ID.String(), nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).Description, nil
				},
			},
			"icon": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).Icon, nil
				},
			},
			"color": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).Color, nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).UserID.String(), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).UpdatedAt, nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildTransactionType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Transaction",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).ID.String(), nil
				},
			},
			"type": &graphql.Field{
				Type: graphql.NewNonNull(b.transactionTypeEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).Type, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).Description, nil
				},
			},
			"date": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).Date, nil
				},
			},
			"amount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).Amount.InexactFloat64(), nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).UserID.String(), nil
				},
			},
			"categoryId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).CategoryID.String(), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return transactionFromSource(p.Source).UpdatedAt, nil
				},
			},
		},
	})
}

// addRelationFields wires the circular Category <-> Transaction edges after
// both object types exist
func (b *schemaBuilder) addRelationFields() {
	r := b.resolver

	b.categoryType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := r.requireUser(p)
			if err != nil {
				return nil, err
			}
			return r.Auth.GetProfile(userID)
		},
	})
	b.categoryType.AddFieldConfig("transactions", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(b.transactionType)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := r.requireUser(p)
			if err != nil {
				return nil, err
			}
			return r.Transactions.ListTransactionsByCategory(categoryFromSource(p.Source).ID, userID)
		},
	})

	b.transactionType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := r.requireUser(p)
			if err != nil {
				return nil, err
			}
			return r.Auth.GetProfile(userID)
		},
	})
	b.transactionType.AddFieldConfig("category", &graphql.Field{
		Type: b.categoryType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := r.requireUser(p)
			if err != nil {
				return nil, err
			}
			return r.Categories.GetCategory(transactionFromSource(p.Source).CategoryID, userID)
		},
	})
}

func (b *schemaBuilder) buildCategoryStatsType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CategoryStats",
		Fields: graphql.Fields{
			"categoryId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.CategoryStats).CategoryID.String(), nil
				},
			},
			"count": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.CategoryStats).Count, nil
				},
			},
			"total": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.CategoryStats).Total.InexactFloat64(), nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildDashboardType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Dashboard",
		Fields: graphql.Fields{
			"balance": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*insights.Summary).Balance.InexactFloat64(), nil
				},
			},
			"monthlyIncome": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*insights.Summary).MonthlyIncome.InexactFloat64(), nil
				},
			},
			"monthlyExpense": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*insights.Summary).MonthlyExpense.InexactFloat64(), nil
				},
			},
			"byCategory": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(b.categoryStatsType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*insights.Summary).ByCategory, nil
				},
			},
			"recent": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(b.transactionType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*insights.Summary).Recent, nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildTransactionPageType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "TransactionPage",
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(b.transactionType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.Page).Items, nil
				},
			},
			"page": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.Page).Page, nil
				},
			},
			"totalPages": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.Page).TotalPages, nil
				},
			},
			"totalItems": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(insights.Page).TotalItems, nil
				},
			},
		},
	})
}

func buildTransactionTypeEnum() *graphql.Enum {
	return graphql.NewEnum(graphql.EnumConfig{
		Name: "TransactionType",
		Values: graphql.EnumValueConfigMap{
			"credit": &graphql.EnumValueConfig{Value: models.TransactionTypeCredit},
			"debit":  &graphql.EnumValueConfig{Value: models.TransactionTypeDebit},
		},
	})
}
