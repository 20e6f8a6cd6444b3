package bundle

import "text/template"

// Artifact templates. Placeholders only; all list construction happens in Go
// so rendering stays deterministic.

const dspText = `declare name "{{.Title}}";

import("stdfaust.lib");

ir = nentry("{{.MenuLabel}}", 0, 0, {{.Count}}, 1);

{{range .Filters}}{{.Slug}} = fi.fir(({{.Coefficients}}));
{{end}}
process = _ : ba.selectoutn({{.Steps}}, ir) : ({{.Branches}}) : ba.selectn({{.Steps}}, ir);
`

const manifestText = `@prefix lv2:  <http://lv2plug.in/ns/lv2core#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

<{{.URI}}>
    a lv2:Plugin ;
    lv2:binary <{{.Name}}.so> ;
    rdfs:seeAlso <{{.Name}}.ttl> ,
                 <modgui.ttl> .
`

const portsText = `@prefix doap:   <http://usefulinc.com/ns/doap#> .
@prefix lv2:    <http://lv2plug.in/ns/lv2core#> .
@prefix pprops: <http://lv2plug.in/ns/ext/port-props#> .
@prefix rdf:    <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs:   <http://www.w3.org/2000/01/rdf-schema#> .

<{{.URI}}>
    a lv2:Plugin ;
    doap:name "{{.Title}}" ;
    lv2:port [
        a lv2:InputPort , lv2:ControlPort ;
        lv2:index 0 ;
        lv2:symbol "ir" ;
        lv2:name "IR" ;
        lv2:default 0 ;
        lv2:minimum 0 ;
        lv2:maximum {{.Count}} ;
        lv2:portProperty lv2:integer , lv2:enumeration ;
        pprops:rangeSteps {{.Steps}} ;
        lv2:scalePoint [ rdfs:label "None" ; rdf:value 0 ] ;
{{- range .Impulses}}
        lv2:scalePoint [ rdfs:label "{{.Title}}" ; rdf:value {{.Index}} ] ;
{{- end}}
    ] , [
        a lv2:InputPort , lv2:AudioPort ;
        lv2:index 1 ;
        lv2:symbol "in" ;
        lv2:name "In" ;
    ] , [
        a lv2:OutputPort , lv2:AudioPort ;
        lv2:index 2 ;
        lv2:symbol "out" ;
        lv2:name "Out" ;
    ] .
`

const modguiText = `@prefix lv2:    <http://lv2plug.in/ns/lv2core#> .
@prefix modgui: <http://moddevices.com/ns/modgui#> .

<{{.URI}}>
    modgui:gui [
        modgui:resourcesDirectory <modgui> ;
        modgui:iconTemplate <modgui/icon-{{.Name}}.html> ;
        modgui:templateData <modgui/data-{{.Name}}.json> ;
        modgui:screenshot <modgui/screenshot-{{.Name}}.png> ;
        modgui:thumbnail <modgui/thumbnail-{{.Name}}.png> ;
        modgui:port [
            lv2:index 0 ;
            lv2:symbol "ir" ;
            lv2:name "{{.Title}}" ;
        ] ;
    ] .
`

const makefileText = `NAME := {{.Name}}
URI  := {{.URI}}

FAUST    ?= faust
ARCH     := lv2.cpp
CXXFLAGS += -O2 -fPIC -std=c++11

all: $(NAME).so

$(NAME).cpp: $(NAME).dsp
	$(FAUST) -a $(ARCH) -cn $(NAME) -o $@ $<

$(NAME).so: $(NAME).cpp
	$(CXX) $(CXXFLAGS) -shared -o $@ $<

clean:
	rm -f $(NAME).cpp $(NAME).so

.PHONY: all clean
`

var (
	dspTmpl      = template.Must(template.New("dsp").Parse(dspText))
	manifestTmpl = template.Must(template.New("manifest").Parse(manifestText))
	portsTmpl    = template.Must(template.New("ports").Parse(portsText))
	modguiTmpl   = template.Must(template.New("modgui").Parse(modguiText))
	makefileTmpl = template.Must(template.New("makefile").Parse(makefileText))
)
