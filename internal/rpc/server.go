package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/article-publisher/internal/newsportal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const namespaceArticle = "article"

func New(logger *slog.Logger, manager *newsportal.Manager) *zenrpc.Server {
	rpcService := NewArticleService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(namespaceArticle, rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "article-publisher", nil))

	return rpcServer
}
