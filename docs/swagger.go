package docs

// @title 人物搜索服务 API
// @version 1.0
// @description 搜索人物公开信息，按类别整理结果并生成AI摘要
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
// @schemes http https
