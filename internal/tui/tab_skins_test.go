// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/blocklauncher/internal/mock"
	"github.com/MKhiriev/blocklauncher/internal/service"
	"github.com/MKhiriev/blocklauncher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const skinURL = "https://cloud.example/storage/v1/object/public/skins/user-1.png"

func TestSkinsTab_InitShowsCurrentTextures(t *testing.T) {
	ctrl := gomock.NewController(t)
	skins := mock.NewMockSkinService(ctrl)
	tab := newSkinsTab(context.Background(), skins, cloudSession())

	skins.EXPECT().TextureURL(gomock.Any(), models.TextureSkin, "user-1").Return(skinURL, true)
	skins.EXPECT().TextureURL(gomock.Any(), models.TextureCape, "user-1").Return("", false)

	msg := tab.Init()()
	require.Equal(t, texturesLoadedMsg{urls: map[models.TextureKind]string{models.TextureSkin: skinURL}}, msg)

	tab, _ = tab.Update(msg)
	view := tab.View()
	assert.Contains(t, view, "skins/user-1.png")
	assert.Contains(t, view, "not uploaded")
}

func TestSkinsTab_UploadCape(t *testing.T) {
	ctrl := gomock.NewController(t)
	skins := mock.NewMockSkinService(ctrl)
	tab := newSkinsTab(context.Background(), skins, cloudSession())
	tab, _ = tab.focus()

	tab, _ = tab.Update(keyMsg("down"))
	tab, _ = tab.Update(keyMsg("/tmp/cape.png"))
	assert.Equal(t, "/tmp/cape.png", tab.input.Value())

	capeURL := "https://cloud.example/storage/v1/object/public/capes/user-1.png"
	skins.EXPECT().UploadCape(gomock.Any(), cloudSession(), "/tmp/cape.png").Return(capeURL, nil)

	tab, cmd := tab.Update(keyMsg("enter"))
	assert.True(t, tab.uploading)

	tab, again := tab.Update(keyMsg("enter"))
	assert.Nil(t, again, "one upload at a time")

	msg := cmd()
	require.Equal(t, textureUploadedMsg{kind: models.TextureCape, url: capeURL}, msg)

	tab, cmd = tab.Update(msg)
	assert.False(t, tab.uploading)
	assert.Equal(t, capeURL, tab.urls[models.TextureCape])
	assert.Empty(t, tab.input.Value())
	assert.Equal(t, "Cape uploaded", cmd().(statusMsg).text)
}

func TestSkinsTab_UploadFailureKeepsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	skins := mock.NewMockSkinService(ctrl)
	tab := newSkinsTab(context.Background(), skins, cloudSession())
	tab, _ = tab.focus()
	tab, _ = tab.Update(keyMsg("/tmp/skin.png"))

	skins.EXPECT().UploadSkin(gomock.Any(), cloudSession(), "/tmp/skin.png").Return("", service.ErrUploadFailed)

	tab, cmd := tab.Update(keyMsg("enter"))
	tab, cmd = tab.Update(cmd())

	assert.False(t, tab.uploading)
	assert.Equal(t, "/tmp/skin.png", tab.input.Value())
	assert.ErrorIs(t, cmd().(statusMsg).err, service.ErrUploadFailed)
}

func TestSkinsTab_EmptyPathIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	tab := newSkinsTab(context.Background(), mock.NewMockSkinService(ctrl), cloudSession())

	tab, cmd := tab.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.False(t, tab.uploading)
}

func TestSkinsTab_OfflineIsInert(t *testing.T) {
	ctrl := gomock.NewController(t)
	tab := newSkinsTab(context.Background(), mock.NewMockSkinService(ctrl), models.OfflineSession("steve"))

	assert.Nil(t, tab.Init())
	_, cmd := tab.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, tab.View(), "cloud account")
}
