package docs

// Fixed template assets written during scaffolding. Only the extra-config
// block carries substitution placeholders; everything else is written
// byte-for-byte.

// preamble makes the project importable from conf.py so autoapi can find it.
const preamble = `import sys
from pathlib import Path

ROOT = Path(__file__).resolve().parent.parent
sys.path.insert(0, str(ROOT))
`

// requirementsTxt lists the packages required to build the docs.
const requirementsTxt = `sphinx
myst-parser
furo
sphinx-copybutton
sphinx-autodoc-typehints
sphinx-autoapi
sphinx-math-dollar
sphinx-design
sphinx-copybutton
sphinxext-opengraph
`

// readthedocsYML is the CI descriptor written to the project root.
const readthedocsYML = `
# Read the Docs configuration file for Sphinx projects
# See https://docs.readthedocs.io/en/stable/config-file/v2.html for details

# Required
version: 2

# Set the OS, Python version and other tools you might need
build:
  os: ubuntu-22.04
  tools:
    python: "3.9"
    # You can also specify other tool versions:
    # nodejs: "20"
    # rust: "1.70"
    # golang: "1.20"

# Build documentation in the "docs/" directory with Sphinx
sphinx:
  configuration: docs/conf.py
  # You can configure Sphinx to use a different builder, for instance use the
  # dirhtml builder for simpler URLs
  # builder: "dirhtml"
  # Fail on all warnings to avoid broken references
  # fail_on_warning: true
# Optionally build your docs in additional formats such as PDF and ePub
# formats:
#    - pdf
#    - epub

# Optional but recommended, declare the Python requirements required
# to build your documentation
# See https://docs.readthedocs.io/en/stable/guides/reproducible-builds.html
python:
  install:
    - requirements: docs/requirements-docs.txt
`

// extensionsBlock replaces the generated extensions list wholesale.
const extensionsBlock = `extensions = [
    "myst_parser",
    "sphinx.ext.viewcode",
    "sphinx_math_dollar",
    "sphinx.ext.mathjax",
    "sphinx.ext.autodoc",
    "sphinx.ext.intersphinx",
    "autoapi.extension",
    "sphinx.ext.napoleon",
    "sphinx_autodoc_typehints",
    "sphinx.ext.todo",
    "sphinx_design",
    "sphinx_copybutton",
    "sphinxext.opengraph",
]
`

// extraConfig is appended to conf.py after the rewrite pass. $AUTOAPI_DIRS
// and $MEMBER_ORDER are substituted at render time.
const extraConfig = `
# Additional configuration section:
# ---------------------------------

# Configuration for sphinx.ext.autodoc & autoapi.extension
# https://autoapi.readthedocs.io/

autodoc_typehints = "description"
autoapi_type = "python"
autoapi_dirs = [$AUTOAPI_DIRS]
autoapi_member_order = "$MEMBER_ORDER"
autoapi_template_dir = "_templates/autoapi"
autoapi_python_class_content = "init"
autoapi_options = [
    "members",
    "undoc-members",
]
autoapi_keep_files = False

# Configuration for sphinx_math_dollar

# sphinx_math_dollar
# https://www.sympy.org/sphinx-math-dollar/

# Note: CHTML is the only output format that works with \mathcal{}
mathjax_path = "https://cdn.mathjax.org/mathjax/latest/MathJax.js?config=TeX-AMS_CHTML"
mathjax3_config = {
    "tex": {
        "inlineMath": [
            ["$", "$"],
            ["\\(", "\\)"],
        ],
        "processEscapes": True,
    },
    "jax": ["input/TeX", "output/CommonHTML", "output/HTML-CSS"],
}

# Configuration for sphinx_autodoc_typehints
# https://github.com/tox-dev/sphinx-autodoc-typehints
typehints_fully_qualified = False
always_document_param_types = True
typehints_document_rtype = True
typehints_defaults = "comma"

# Configuration for the MyST (markdown) parser
# https://myst-parser.readthedocs.io/en/latest/intro.html
myst_enable_extensions = ["colon_fence"]

# Configuration for sphinxext.opengraph
# https://sphinxext-opengraph.readthedocs.io/en/latest/

ogp_site_url = "TODO"
ogp_social_cards = {
    "enable": True,
    "image": "./_static/images/SOME_IMAGE",
}

`

// indexRST includes the project README on the landing page.
const indexRST = `.. include:: ../README.md
   :parser: myst_parser.sphinx_

.. toctree::
   :hidden:
   :maxdepth: 4

   self

`
