package graph

// Schema is the explicit SDL definition of the whole API. Resolver
// methods and field structs in this package are kept in sync with it by
// hand; graphql.MustParseSchema panics at startup on any drift.
const Schema = `
schema {
	query: Query
	mutation: Mutation
	subscription: Subscription
}

enum UserRole {
	Client
	Owner
	Delivery
}

enum OrderStatus {
	Pending
	Cooking
	Cooked
	PickedUp
	Delivered
}

type User {
	id: Int!
	email: String!
	role: UserRole!
	verified: Boolean!
}

type Category {
	id: Int!
	name: String!
	coverImage: String
	slug: String!
	restaurantCount: Int!
}

type Restaurant {
	id: Int!
	name: String!
	coverImage: String!
	address: String!
	category: Category
	isPromoted: Boolean!
	menu: [Dish!]!
}

type DishChoice {
	name: String!
	extra: Float
}

type DishOption {
	name: String!
	extra: Float
	choices: [DishChoice!]!
}

type Dish {
	id: Int!
	name: String!
	price: Float!
	photo: String
	description: String!
	options: [DishOption!]!
}

type OrderItemOption {
	name: String!
	choice: String
}

type OrderItem {
	id: Int!
	dishId: Int!
	options: [OrderItemOption!]!
}

type Order {
	id: Int!
	status: OrderStatus!
	total: Float
	customerId: Int
	driverId: Int
	restaurantId: Int
	items: [OrderItem!]!
}

type Payment {
	id: Int!
	transactionId: String!
	userId: Int!
	restaurantId: Int!
}

type Output {
	ok: Boolean!
	error: String
}

type LoginOutput {
	ok: Boolean!
	error: String
	token: String
}

type UserProfileOutput {
	ok: Boolean!
	error: String
	user: User
}

type RestaurantsOutput {
	ok: Boolean!
	error: String
	restaurants: [Restaurant!]!
	totalPages: Int
	totalResults: Int
}

type RestaurantOutput {
	ok: Boolean!
	error: String
	restaurant: Restaurant
}

type AllCategoriesOutput {
	ok: Boolean!
	error: String
	categories: [Category!]!
}

type CategoryOutput {
	ok: Boolean!
	error: String
	category: Category
	restaurants: [Restaurant!]!
	totalPages: Int
	totalResults: Int
}

type GetOrdersOutput {
	ok: Boolean!
	error: String
	orders: [Order!]!
}

type GetOrderOutput {
	ok: Boolean!
	error: String
	order: Order
}

type GetPaymentsOutput {
	ok: Boolean!
	error: String
	payments: [Payment!]!
}

input CreateAccountInput {
	email: String!
	password: String!
	role: UserRole!
}

input LoginInput {
	email: String!
	password: String!
}

input EditProfileInput {
	email: String
	password: String
}

input VerifyEmailInput {
	code: String!
}

input CreateRestaurantInput {
	name: String!
	coverImage: String!
	address: String!
	categoryName: String!
}

input EditRestaurantInput {
	restaurantId: Int!
	name: String
	coverImage: String
	address: String
	categoryName: String
}

input DishChoiceInput {
	name: String!
	extra: Float
}

input DishOptionInput {
	name: String!
	extra: Float
	choices: [DishChoiceInput!]
}

input CreateDishInput {
	restaurantId: Int!
	name: String!
	price: Float!
	photo: String
	description: String!
	options: [DishOptionInput!]
}

input EditDishInput {
	dishId: Int!
	name: String
	price: Float
	photo: String
	description: String
	options: [DishOptionInput!]
}

input OrderItemOptionInput {
	name: String!
	choice: String
}

input CreateOrderItemInput {
	dishId: Int!
	options: [OrderItemOptionInput!]
}

input CreateOrderInput {
	restaurantId: Int!
	items: [CreateOrderItemInput!]!
}

input EditOrderInput {
	id: Int!
	status: OrderStatus!
}

input CreatePaymentInput {
	transactionId: String!
	restaurantId: Int!
}

type Query {
	me: User!
	userProfile(userId: Int!): UserProfileOutput!
	restaurants(page: Int!): RestaurantsOutput!
	restaurant(restaurantId: Int!): RestaurantOutput!
	searchRestaurant(query: String!, page: Int!): RestaurantsOutput!
	allCategories: AllCategoriesOutput!
	category(slug: String!, page: Int!): CategoryOutput!
	getOrders(status: OrderStatus): GetOrdersOutput!
	getOrder(id: Int!): GetOrderOutput!
	getPayments: GetPaymentsOutput!
}

type Mutation {
	createAccount(input: CreateAccountInput!): Output!
	login(input: LoginInput!): LoginOutput!
	editProfile(input: EditProfileInput!): Output!
	verifyEmail(input: VerifyEmailInput!): Output!
	createRestaurant(input: CreateRestaurantInput!): Output!
	editRestaurant(input: EditRestaurantInput!): Output!
	deleteRestaurant(restaurantId: Int!): Output!
	createDish(input: CreateDishInput!): Output!
	editDish(input: EditDishInput!): Output!
	deleteDish(dishId: Int!): Output!
	createOrder(input: CreateOrderInput!): Output!
	editOrder(input: EditOrderInput!): Output!
	takeOrder(id: Int!): Output!
	createPayment(input: CreatePaymentInput!): Output!
}

type Subscription {
	pendingOrders: Order!
	cookedOrders: Order!
	orderUpdates(id: Int!): Order!
}
`
