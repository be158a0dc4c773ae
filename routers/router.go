package routers

import (
	"github.com/zhuyun/ZhuYun/middleware"
	"github.com/zhuyun/ZhuYun/pkg/conf"
	"github.com/zhuyun/ZhuYun/pkg/util"
	"github.com/zhuyun/ZhuYun/routers/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// InitRouter 初始化路由
func InitRouter() *gin.Engine {
	r := gin.Default()

	// 跨域相关
	InitCORS(r)

	// 压缩
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/projects"})))

	/*
		中间件
	*/
	r.Use(middleware.Session(conf.SystemConfig.SessionSecret))

	// 用户会话
	r.Use(middleware.CurrentUser())

	/*
		路由
	*/
	v1 := r.Group("/api/v1")
	{
		// 全局设置相关
		site := v1.Group("site")
		{
			// 测试用路由
			site.GET("ping", controllers.Ping)
			// 全局配置
			site.GET("config", controllers.SiteConfig)
		}

		// 用户相关路由
		user := v1.Group("user")
		{
			// 用户登录
			user.POST("session", controllers.UserLogin)
			// 用户退出登录
			user.DELETE("session", controllers.UserLogout)
			// 当前登录用户信息
			user.GET("me", middleware.AuthRequired(), controllers.UserMe)
		}

		// 分享的公开访问，无需登录
		sharePublic := v1.Group("share", middleware.ShareAvailable())
		{
			// 获取分享内容
			sharePublic.GET(":id", controllers.GetShare)
			// 校验分享密码
			sharePublic.POST(":id/unlock", controllers.UnlockShare)
			// 获取分享留言
			sharePublic.GET(":id/comments", controllers.ListShareComments)
			// 追加分享留言
			sharePublic.POST(":id/comments", controllers.CreateShareComment)
		}

		// 需要登录保护的路由
		auth := v1.Group("", middleware.AuthRequired())
		{
			// 项目
			projects := auth.Group("projects")
			{
				projects.POST("", controllers.ProjectCreate)
				projects.GET("", controllers.ProjectList)
				projects.GET(":id", controllers.ProjectGet)
				projects.PUT(":id", controllers.ProjectUpdate)
				projects.DELETE(":id", controllers.ProjectDelete)

				// 项目子资源
				projects.GET(":id/phases", controllers.ProjectPhases)
				projects.POST(":id/phases", controllers.ProjectPhaseCreate)
				projects.GET(":id/expenses", controllers.ProjectExpenses)
				projects.POST(":id/expenses", controllers.ProjectExpenseCreate)
				projects.GET(":id/materials", controllers.ProjectMaterials)
				projects.POST(":id/materials", controllers.ProjectMaterialCreate)
				projects.GET(":id/members", controllers.ProjectMembers)
				projects.POST(":id/members", controllers.ProjectMemberCreate)
				projects.GET(":id/photos", controllers.ProjectPhotos)
				projects.POST(":id/photos", controllers.ProjectPhotoUpload)

				// 项目文档
				projects.POST(":id/documents", controllers.DocumentUpload)
				projects.GET(":id/documents", controllers.DocumentList)
				projects.GET(":id/documents/:did/url", controllers.DocumentSource)
				projects.GET(":id/documents/:did/download", controllers.DocumentDownload)
				projects.DELETE(":id/documents/:did", controllers.DocumentDelete)
			}

			// 分享管理
			shares := auth.Group("shares")
			{
				shares.POST("", controllers.CreateShare)
				shares.GET("", controllers.ListShares)
				shares.PATCH(":id", controllers.UpdateShare)
				shares.DELETE(":id", controllers.DeleteShare)
			}
		}
	}

	return r
}

// InitCORS 初始化跨域配置
func InitCORS(router *gin.Engine) {
	if conf.CORSConfig.AllowOrigins[0] != "UNSET" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     conf.CORSConfig.AllowOrigins,
			AllowMethods:     conf.CORSConfig.AllowMethods,
			AllowHeaders:     conf.CORSConfig.AllowHeaders,
			AllowCredentials: conf.CORSConfig.AllowCredentials,
			ExposeHeaders:    conf.CORSConfig.ExposeHeaders,
		}))
		return
	}

	// 未配置跨域时警告
	util.Log().Info("未启用跨域策略")
}
