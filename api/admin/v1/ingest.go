package v1

import (
	"github.com/coaching-ai/coachadmin/internal/model/gorm"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
)

type FileUploadReq struct {
	g.Meta `path:"/v1/files" method:"post" mime:"multipart/form-data" tags:"ingest" summary:"Upload a source file"`
	File   *ghttp.UploadFile `p:"file" type:"file" v:"required" dc:"file to upload, pdf/doc/docx/txt, max 10MB"`
}

type FileUploadRes struct {
	*gorm.File `dc:"created file record"`
}

type FileListReq struct {
	g.Meta `path:"/v1/files" method:"get" tags:"ingest" summary:"List uploaded files"`
}

type FileListRes struct {
	List []gorm.File `json:"list" dc:"files, newest first"`
}

type FileDeleteReq struct {
	g.Meta `path:"/v1/files/{id}" method:"delete" tags:"ingest" summary:"Delete an uploaded file and its chunks"`
	Id     string `v:"required" dc:"file id"`
}

type FileDeleteRes struct{}

type VideoLinkAddReq struct {
	g.Meta `path:"/v1/videolinks" method:"post" tags:"ingest" summary:"Register a YouTube video link"`
	Url    string `v:"required" dc:"youtube video url"`
}

type VideoLinkAddRes struct {
	*gorm.VideoLink `dc:"created video link record"`
}

type VideoLinkListReq struct {
	g.Meta `path:"/v1/videolinks" method:"get" tags:"ingest" summary:"List video links"`
}

type VideoLinkListRes struct {
	List []gorm.VideoLink `json:"list" dc:"video links, newest first"`
}

type VideoLinkDeleteReq struct {
	g.Meta `path:"/v1/videolinks/{id}" method:"delete" tags:"ingest" summary:"Delete a video link"`
	Id     string `v:"required" dc:"video link id"`
}

type VideoLinkDeleteRes struct{}
