package handler

import (
	"portchat/internal/app/chat"
	"portchat/internal/app/store"
	"portchat/internal/configs"
)

type AppDeps struct {
	Hub    *chat.Hub
	Bans   *store.BanStore
	Config *configs.AppConfig
}
