// Package graph defines the GraphQL schema and its resolvers. The schema
// is built in code with graphql-go rather than parsed from SDL, which
// keeps field resolution next to the type definitions.
package graph

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/insights"

	"github.com/graphql-go/graphql"
)

type schemaBuilder struct {
	resolver *Resolver

	transactionTypeEnum *graphql.Enum
	userType            *graphql.Object
	categoryType        *graphql.Object
	transactionType     *graphql.Object
	categoryStatsType   *graphql.Object
	dashboardType       *graphql.Object
	transactionPageType *graphql.Object
}

// NewSchema builds the executable schema over the given resolver
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	b := &schemaBuilder{resolver: resolver}

	b.transactionTypeEnum = buildTransactionTypeEnum()
	b.userType = b.buildUserType()
	b.categoryType = b.buildCategoryType()
	b.transactionType = b.buildTransactionType()
	b.addRelationFields()
	b.categoryStatsType = b.buildCategoryStatsType()
	b.dashboardType = b.buildDashboardType()
	b.transactionPageType = b.buildTransactionPageType()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.buildQueryType(),
		Mutation: b.buildMutationType(),
	})
}

func (b *schemaBuilder) buildQueryType() *graphql.Object {
	r := b.resolver

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: b.userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Auth.GetProfile(userID)
				},
			},
			"listCategories": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(b.categoryType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Categories.ListCategories(userID)
				},
			},
			"getCategory": &graphql.Field{
				Type: b.categoryType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					categoryID, err := uuidArg(p.Args, "id")
					if err != nil {
						return nil, invalidIDError()
					}
					return r.Categories.GetCategory(categoryID, userID)
				},
			},
			"listTransactions": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(b.transactionType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					return r.Transactions.ListTransactions(userID)
				},
			},
			"getTransaction": &graphql.Field{
				Type: b.transactionType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					transactionID, err := uuidArg(p.Args, "id")
					if err != nil {
						return nil, invalidIDError()
					}
					return r.Transactions.GetTransaction(transactionID, userID)
				},
			},
			"searchTransactions": &graphql.Field{
				Type: b.transactionPageType,
				Args: graphql.FieldConfigArgument{
					"search":     &graphql.ArgumentConfig{Type: graphql.String},
					"type":       &graphql.ArgumentConfig{Type: b.transactionTypeEnum},
					"categoryId": &graphql.ArgumentConfig{Type: graphql.ID},
					"month":      &graphql.ArgumentConfig{Type: graphql.Int},
					"year":       &graphql.ArgumentConfig{Type: graphql.Int},
					"page":       &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				},
				Resolve: r.resolveSearchTransactions,
			},
			"dashboard": &graphql.Field{
				Type: b.dashboardType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					transactions, err := r.Transactions.ListTransactions(userID)
					if err != nil {
						return nil, err
					}
					return insights.Summarize(transactions, time.Now()), nil
				},
			},
		},
	})
}

func (r *Resolver) resolveSearchTransactions(p graphql.ResolveParams) (interface{}, error) {
	userID, err := r.requireUser(p)
	if err != nil {
		return nil, err
	}

	transactions, err := r.Transactions.ListTransactions(userID)
	if err != nil {
		return nil, err
	}

	filter := insights.Filter{
		Search: stringArg(p.Args, "search"),
		Type:   stringArg(p.Args, "type"),
		Month:  time.Month(intArg(p.Args, "month")),
		Year:   intArg(p.Args, "year"),
	}
	if raw := stringArg(p.Args, "categoryId"); raw != "" {
		categoryID, err := uuidArg(p.Args, "categoryId")
		if err != nil {
			return nil, invalidIDError()
		}
		filter.CategoryID = categoryID
	}

	page := intArg(p.Args, "page")
	return insights.Paginate(filter.Apply(transactions), page), nil
}

func (b *schemaBuilder) buildMutationType() *graphql.Object {
	r := b.resolver

	createCategoryInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCategoryInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"icon":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"color":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateCategoryInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCategoryInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"icon":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"color":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	createTransactionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTransactionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"type":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(b.transactionTypeEnum)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"date":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
			"amount":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"categoryId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	updateTransactionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTransactionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"type":        &graphql.InputObjectFieldConfig{Type: b.transactionTypeEnum},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"date":        &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"amount":      &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"categoryId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCategory": &graphql.Field{
				Type: b.categoryType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCategoryInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					input := inputArg(p.Args, "input")
					createInput := &dto.CreateCategoryInput{
						Title:       stringArg(input, "title"),
						Description: stringArg(input, "description"),
						Icon:        stringArg(input, "icon"),
						Color:       stringArg(input, "color"),
					}
					if err := validateInput(createInput); err != nil {
						return nil, err
					}
					return r.Categories.CreateCategory(userID, createInput)
				},
			},
			"updateCategory": &graphql.Field{
				Type: b.categoryType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCategoryInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					categoryID, err := uuidArg(p.Args, "id")
					if err != nil {
						return nil, invalidIDError()
					}
					input := inputArg(p.Args, "input")
					updateInput := &dto.UpdateCategoryInput{
						Title:       optionalStringArg(input, "title"),
						Description: optionalStringArg(input, "description"),
						Icon:        optionalStringArg(input, "icon"),
						Color:       optionalStringArg(input, "color"),
					}
					if err := validateInput(updateInput); err != nil {
						return nil, err
					}
					return r.Categories.UpdateCategory(categoryID, userID, updateInput)
				},
			},
			"deleteCategory": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					categoryID, err := uuidArg(p.Args, "id")
					if err != nil {
						return nil, invalidIDError()
					}
					if _, err := r.Categories.DeleteCategory(categoryID, userID); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
			"createTransaction": &graphql.Field{
				Type: b.transactionType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTransactionInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					input := inputArg(p.Args, "input")
					createInput := &dto.CreateTransactionInput{
						Type:        stringArg(input, "type"),
						Description: stringArg(input, "description"),
						Date:        timeArg(input, "date"),
						Amount:      floatArg(input, "amount"),
						CategoryID:  stringArg(input, "categoryId"),
					}
					if err := validateInput(createInput); err != nil {
						return nil, err
					}
					return r.Transactions.CreateTransaction(userID, createInput)
				},
			},
			"updateTransaction": &graphql.Field{
				Type: b.transactionType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTransactionInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					transactionID, err := uuidArg(p.Args, "id")
					if err != nil {
						return nil, invalidIDError()
					}
					input := inputArg(p.Args, "input")
					updateInput := &dto.UpdateTransactionInput{
						Type:        optionalStringArg(input, "type"),
						Description: optionalStringArg(input, "description"),
						Date:        optionalTimeArg(input, "date"),
						Amount:      optionalFloatArg(input, "amount"),
						CategoryID:  optionalStringArg(input, "categoryId"),
					}
					if err := validateInput(updateInput); err != nil {
						return nil, err
					}
					return r.Transactions.UpdateTransaction(transactionID, userID, updateInput)
				},
			},
			"deleteTransaction": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := r.requireUser(p)
					if err != nil {
						return nil, err
					}
					transactionID, err := uuidArg(p.Args, "id")
					if err != nil {
						return nil, invalidIDError()
					}
					if _, err := r.Transactions.DeleteTransaction(transactionID, userID); err != nil {
						return nil, err
					}
					return true, nil
				},
			},
		},
	})
}
